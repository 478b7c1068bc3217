package pipeline

import "time"

type Stage int

const (
	StageReceived Stage = iota
	StageValidated
	StageContextGathered
	StageFiltered
	StagePromptBuilt
	StageModelCalled
	StageExtracted
	StageFormatted
	StageDone
	StageFailed
)

var stageNames = map[Stage]string{
	StageReceived:        "received",
	StageValidated:       "validated",
	StageContextGathered: "context_gathered",
	StageFiltered:        "filtered",
	StagePromptBuilt:     "prompt_built",
	StageModelCalled:     "model_called",
	StageExtracted:       "extracted",
	StageFormatted:       "formatted",
	StageDone:            "done",
	StageFailed:          "failed",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "unknown"
}

// Trace follows one pipeline run through its linear states. Once failed it
// stays failed.
type Trace struct {
	UseCase string

	current  Stage
	reached  Stage
	cause    error
	started  time.Time
	finished time.Time
}

func NewTrace(useCase string) *Trace {
	return &Trace{UseCase: useCase, current: StageReceived, reached: StageReceived, started: time.Now()}
}

func (t *Trace) Advance(s Stage) {
	if t.current == StageFailed || s <= t.reached {
		return
	}
	t.current = s
	t.reached = s
	if s == StageDone {
		t.finished = time.Now()
	}
}

// Fail moves the run to the terminal failed state and hands the error back so
// callers can `return t.Fail(err)`.
func (t *Trace) Fail(err error) error {
	if t.current != StageFailed {
		t.current = StageFailed
		t.cause = err
		t.finished = time.Now()
	}
	return err
}

func (t *Trace) Stage() Stage   { return t.current }
func (t *Trace) Reached() Stage { return t.reached }
func (t *Trace) Cause() error   { return t.cause }

func (t *Trace) Elapsed() time.Duration {
	if t.finished.IsZero() {
		return time.Since(t.started)
	}
	return t.finished.Sub(t.started)
}

// Outcome is the label used for metrics.
func (t *Trace) Outcome() string {
	if t.current == StageFailed {
		return Kind(t.cause)
	}
	return "success"
}
