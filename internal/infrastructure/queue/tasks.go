package queue

// Task types
const (
	TypeExpireClassifieds = "classified:expire_due"
)

// Queue names
const (
	QueueMaintenance = "maintenance"
	QueueDefault     = "default"
)

// Queues maps each queue to its asynq priority weight.
var Queues = map[string]int{
	QueueDefault:     10,
	QueueMaintenance: 5,
}
