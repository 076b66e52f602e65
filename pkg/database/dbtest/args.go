// Package dbtest holds pgxmock helpers shared by repository tests.
package dbtest

import (
	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
)

// UUID matches id whether it reaches the driver as uuid.UUID or as its text form.
// squirrel.Eq runs driver.Valuer on its values while Values and Set pass them through.
func UUID(id uuid.UUID) pgxmock.Argument {
	return uuidArg(id)
}

type uuidArg uuid.UUID

func (a uuidArg) Match(v interface{}) bool {
	want := uuid.UUID(a)
	switch got := v.(type) {
	case uuid.UUID:
		return got == want
	case *uuid.UUID:
		return got != nil && *got == want
	case string:
		return got == want.String()
	case []byte:
		return string(got) == want.String()
	}
	return false
}
