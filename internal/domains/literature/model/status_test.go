package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jaalakam-backend/internal/domains/literature/model"
	"jaalakam-backend/internal/shared/apperr"
)

func TestPublish(t *testing.T) {
	tests := []struct {
		from    model.Status
		allowed bool
	}{
		{model.StatusDraft, true},
		{model.StatusPublished, true},
		{model.StatusModerated, false},
		{model.StatusArchived, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from), func(t *testing.T) {
			outcome, err := model.Publish(tt.from)
			if !tt.allowed {
				assert.ErrorIs(t, err, model.ErrInvalidTransition)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, model.StatusPublished, outcome.Status)
			assert.Equal(t, model.StampNow, outcome.Stamp)
			assert.False(t, outcome.Remove)
		})
	}
}

func TestModerate(t *testing.T) {
	t.Run("Should map every action to its transition", func(t *testing.T) {
		outcome, err := model.Moderate(model.StatusDraft, model.ActionApprove)
		require.NoError(t, err)
		assert.Equal(t, model.Outcome{Status: model.StatusPublished, Stamp: model.StampIfUnset}, outcome)

		outcome, err = model.Moderate(model.StatusPublished, model.ActionReject)
		require.NoError(t, err)
		assert.Equal(t, model.Outcome{Status: model.StatusModerated}, outcome)

		outcome, err = model.Moderate(model.StatusModerated, model.ActionArchive)
		require.NoError(t, err)
		assert.Equal(t, model.Outcome{Status: model.StatusArchived}, outcome)

		outcome, err = model.Moderate(model.StatusArchived, model.ActionDelete)
		require.NoError(t, err)
		assert.True(t, outcome.Remove)
	})

	t.Run("Should not reopen moderated or archived items", func(t *testing.T) {
		for _, from := range []model.Status{model.StatusModerated, model.StatusArchived} {
			_, err := model.Moderate(from, model.ActionApprove)
			assert.ErrorIs(t, err, model.ErrInvalidTransition, from)
		}
	})

	t.Run("Should reject unknown actions as bad requests", func(t *testing.T) {
		_, err := model.ParseModerationAction("BURN")
		assert.True(t, apperr.Is(err, apperr.KindBadRequest))

		_, err = model.Moderate(model.StatusDraft, model.ModerationAction("approve"))
		assert.ErrorIs(t, err, model.ErrInvalidAction)
	})

	t.Run("Should dismiss reports only on approval", func(t *testing.T) {
		assert.True(t, model.ActionApprove.Dismisses())
		assert.False(t, model.ActionReject.Dismisses())
		assert.False(t, model.ActionArchive.Dismisses())
		assert.False(t, model.ActionDelete.Dismisses())
	})
}

func TestParseModerationAction(t *testing.T) {
	for _, s := range []string{"APPROVE", "REJECT", "ARCHIVE", "DELETE"} {
		a, err := model.ParseModerationAction(s)
		require.NoError(t, err)
		assert.Equal(t, model.ModerationAction(s), a)
	}
}

func TestListRequest_Normalize(t *testing.T) {
	req := model.ListRequest{Tags: []string{"rain, sea", "", "monsoon"}, Limit: 500, Offset: -3}
	req.Normalize()

	assert.Equal(t, []string{"rain", "sea", "monsoon"}, req.Tags)
	assert.Equal(t, model.MaxListLimit, req.Limit)
	assert.Equal(t, 0, req.Offset)

	empty := model.ListRequest{}
	empty.Normalize()
	assert.Equal(t, model.DefaultListLimit, empty.Limit)
	assert.Nil(t, empty.Tags)
}

func TestCreateRequest_Validate(t *testing.T) {
	valid := model.CreateRequest{Title: "Mazha", Content: "...", Type: model.TypePoem}
	assert.NoError(t, valid.Validate())

	badType := valid
	badType.Type = "LIMERICK"
	assert.Error(t, badType.Validate())

	badLanguage := valid
	badLanguage.Language = "TAMIL"
	assert.Error(t, badLanguage.Validate())

	assert.Error(t, model.CreateRequest{Type: model.TypePoem}.Validate())
}
