package wizard

import (
	"context"
	"errors"
)

var (
	// ErrUnknownField reports an update naming a field no step declares.
	ErrUnknownField = errors.New("wizard: unknown field")
	// ErrWrongKind reports an update whose shape does not fit the field kind.
	ErrWrongKind = errors.New("wizard: update does not fit field kind")
	// ErrInvalidUpdate reports an update that cannot apply to the current value.
	ErrInvalidUpdate = errors.New("wizard: invalid update")
	// ErrNotFinalStep reports a submit attempted before the last step.
	ErrNotFinalStep = errors.New("wizard: submit is only allowed on the last step")
	// ErrSubmissionInFlight reports activity while a submission is outstanding.
	ErrSubmissionInFlight = errors.New("wizard: submission already in flight")
	// ErrAlreadySubmitted reports activity after a successful submission.
	ErrAlreadySubmitted = errors.New("wizard: already submitted")
)

// FieldError reports a field value that failed validation. The key is also
// recorded in the form's ValidationErrors.
type FieldError struct {
	Field Field
	Key   string
}

func (e *FieldError) Error() string {
	return "wizard: field " + string(e.Field) + ": " + e.Key
}

// Result is the outcome of one submission attempt.
type Result struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
	ID      string            `json:"id,omitempty"`
}

// Gateway performs the single external write for a completed draft.
type Gateway[D any] interface {
	Submit(ctx context.Context, draft D) Result
}

// GatewayFunc adapts a function to Gateway.
type GatewayFunc[D any] func(ctx context.Context, draft D) Result

// Submit calls fn.
func (fn GatewayFunc[D]) Submit(ctx context.Context, draft D) Result {
	return fn(ctx, draft)
}
