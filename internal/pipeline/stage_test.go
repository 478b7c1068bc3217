package pipeline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrace(t *testing.T) {
	tr := NewTrace("itinerary")
	tr.Advance(StageValidated)
	tr.Advance(StagePromptBuilt)
	tr.Advance(StageContextGathered)
	assert.Equal(t, StagePromptBuilt, tr.Stage())

	err := tr.Fail(&ServiceError{Service: "completion", Err: errors.New("quota")})
	assert.Error(t, err)
	tr.Advance(StageDone)

	assert.Equal(t, StageFailed, tr.Stage())
	assert.Equal(t, StagePromptBuilt, tr.Reached())
	assert.Equal(t, "service", tr.Outcome())
	assert.Equal(t, "prompt_built", tr.Reached().String())
}

func TestKind(t *testing.T) {
	assert.Equal(t, "ok", Kind(nil))
	assert.Equal(t, "validation", Kind(NewValidationError("x", "bad")))
	assert.Equal(t, "malformed_response", Kind(AsServiceError("completion", &MalformedResponseError{Reason: "x"})))
	assert.Equal(t, "service", Kind(AsServiceError("completion", errors.New("boom"))))
	assert.Equal(t, "not_found", Kind(&NotFoundError{Resource: "user"}))
	assert.Equal(t, "internal", Kind(errors.New("other")))
}
