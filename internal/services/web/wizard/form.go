// Package wizard implements the multi-step onboarding form engine shared by
// every profile variant.
//
// A Form owns one in-progress draft, the current step index and the field
// validation errors. Navigation forward is gated on the current step
// validating; navigation backward is not. Submission is only possible from
// the last step and at most one submission may be outstanding at a time.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sync"
)

// Draft is a ProfileDraft variant. Put must reject fields the variant does
// not declare; Clone must return a deep copy.
type Draft[D any] interface {
	Get(Field) (Value, bool)
	Put(Field, Value) error
	Clone() D
}

type fieldRef struct {
	spec FieldSpec
	step int
}

// Form is the state container for one wizard session.
type Form[D Draft[D]] struct {
	mu        sync.Mutex
	steps     []Step
	fields    map[Field]fieldRef
	domain    Domain
	draft     D
	index     int
	errors    ValidationErrors
	inFlight  bool
	submitted bool
	result    *Result
}

// New builds a form over steps starting at step 0 with the given draft.
func New[D Draft[D]](steps []Step, draft D, domain Domain) (*Form[D], error) {
	if len(steps) == 0 {
		return nil, errors.New("wizard: at least one step is required")
	}
	fields := make(map[Field]fieldRef)
	for idx, step := range steps {
		for _, spec := range step.Fields {
			if _, dup := fields[spec.Field]; dup {
				return nil, fmt.Errorf("wizard: field %q declared twice", spec.Field)
			}
			if spec.Kind < KindText || spec.Kind > KindAttachment {
				return nil, fmt.Errorf("wizard: field %q has no kind", spec.Field)
			}
			if spec.Category != "" {
				if domain == nil {
					return nil, fmt.Errorf("wizard: field %q needs an option domain", spec.Field)
				}
				if !domain.Defines(spec.Category) {
					return nil, fmt.Errorf("wizard: field %q uses undefined option category %q", spec.Field, spec.Category)
				}
			}
			if _, ok := draft.Get(spec.Field); !ok {
				return nil, fmt.Errorf("wizard: draft does not hold field %q", spec.Field)
			}
			fields[spec.Field] = fieldRef{spec: spec, step: idx}
		}
	}
	return &Form[D]{
		steps:  append([]Step(nil), steps...),
		fields: fields,
		domain: domain,
		draft:  draft.Clone(),
		errors: ValidationErrors{},
	}, nil
}

// Set applies u to the draft and re-validates the field it targets.
//
// Enumerated values outside the option domain are rejected and the draft is
// left unchanged. Malformed email or URL values are stored so the user can
// correct them. Both cases record the field error and return a *FieldError.
// A field that is merely empty only has its error refreshed when it already
// had one; emptiness is otherwise reported by navigation.
func (f *Form[D]) Set(u Update) error {
	if u == nil {
		return ErrInvalidUpdate
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.mutableLocked(); err != nil {
		return err
	}
	ref, ok := f.fields[u.Target()]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, u.Target())
	}
	spec := ref.spec
	if !u.accepts(spec.Kind) {
		return fmt.Errorf("%w: %q is %s", ErrWrongKind, spec.Field, spec.Kind)
	}
	current, _ := f.draft.Get(spec.Field)
	next, err := u.apply(current.Clone())
	if err != nil {
		return err
	}
	next = normalize(spec.Kind, next)

	key := check(spec, next, f.domain)
	if key == KeyOutOfDomain {
		f.errors[spec.Field] = key
		return &FieldError{Field: spec.Field, Key: key}
	}
	if err := f.draft.Put(spec.Field, next); err != nil {
		return err
	}
	switch key {
	case "":
		delete(f.errors, spec.Field)
	case KeyRequired:
		if _, had := f.errors[spec.Field]; had {
			f.errors[spec.Field] = key
		}
	default:
		f.errors[spec.Field] = key
		return &FieldError{Field: spec.Field, Key: key}
	}
	return nil
}

// Next advances one step when the current step validates. On failure, and
// on the last step, it records the step errors and reports false.
func (f *Form[D]) Next() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.mutableLocked() != nil {
		return false
	}
	if f.index >= len(f.steps)-1 {
		return false
	}
	if !f.refreshStepLocked(f.index) {
		return false
	}
	f.index++
	return true
}

// Prev moves back one step, never below the first.
func (f *Form[D]) Prev() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mutableLocked() != nil {
		return
	}
	if f.index > 0 {
		f.index--
	}
}

// GoToFirstSection jumps back to step 0.
func (f *Form[D]) GoToFirstSection() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mutableLocked() != nil {
		return
	}
	f.index = 0
}

// Submit validates every step and hands a snapshot of the draft to gw.
//
// A draft that fails validation yields an unsuccessful Result without
// calling gw. The form lock is not held while gw runs; concurrent calls see
// ErrSubmissionInFlight. The draft is never modified by submission.
func (f *Form[D]) Submit(ctx context.Context, gw Gateway[D]) (Result, error) {
	if gw == nil {
		return Result{}, errors.New("wizard: gateway is required")
	}
	f.mu.Lock()
	if err := f.mutableLocked(); err != nil {
		var last Result
		if f.result != nil {
			last = cloneResult(*f.result)
		}
		f.mu.Unlock()
		return last, err
	}
	if f.index != len(f.steps)-1 {
		f.mu.Unlock()
		return Result{}, ErrNotFinalStep
	}
	valid := true
	for idx := range f.steps {
		if !f.refreshStepLocked(idx) {
			valid = false
		}
	}
	if !valid {
		res := Result{Message: KeyIncomplete, Errors: f.errors.Strings()}
		f.result = &res
		f.mu.Unlock()
		return cloneResult(res), nil
	}
	snapshot := f.draft.Clone()
	f.inFlight = true
	f.mu.Unlock()

	res := gw.Submit(ctx, snapshot)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.inFlight = false
	f.submitted = res.Success
	for name, key := range res.Errors {
		if _, ok := f.fields[Field(name)]; ok {
			f.errors[Field(name)] = key
		}
	}
	f.result = &res
	return cloneResult(res), nil
}

// CanProceed reports whether the current step validates, without recording
// errors.
func (f *Form[D]) CanProceed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, spec := range f.steps[f.index].Fields {
		value, _ := f.draft.Get(spec.Field)
		if check(spec, value, f.domain) != "" {
			return false
		}
	}
	return true
}

// Values returns a snapshot of the draft.
func (f *Form[D]) Values() D {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft.Clone()
}

// Step returns the current step index.
func (f *Form[D]) Step() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.index
}

// StepCount returns the number of steps.
func (f *Form[D]) StepCount() int {
	return len(f.steps)
}

// Steps returns the step declarations.
func (f *Form[D]) Steps() []Step {
	return append([]Step(nil), f.steps...)
}

// CurrentStep returns the declaration of the current step.
func (f *Form[D]) CurrentStep() Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.steps[f.index]
}

// IsLast reports whether the current step is the last one.
func (f *Form[D]) IsLast() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.index == len(f.steps)-1
}

// Errors returns a copy of the field errors.
func (f *Form[D]) Errors() ValidationErrors {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errors.clone()
}

// LastResult returns the result of the latest submission attempt.
func (f *Form[D]) LastResult() (Result, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.result == nil {
		return Result{}, false
	}
	return cloneResult(*f.result), true
}

// InFlight reports whether a submission is outstanding.
func (f *Form[D]) InFlight() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inFlight
}

// Submitted reports whether a submission succeeded.
func (f *Form[D]) Submitted() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitted
}

func (f *Form[D]) mutableLocked() error {
	if f.inFlight {
		return ErrSubmissionInFlight
	}
	if f.submitted {
		return ErrAlreadySubmitted
	}
	return nil
}

// refreshStepLocked recomputes the errors of one step and reports whether it
// validates.
func (f *Form[D]) refreshStepLocked(idx int) bool {
	valid := true
	for _, spec := range f.steps[idx].Fields {
		value, _ := f.draft.Get(spec.Field)
		if key := check(spec, value, f.domain); key != "" {
			f.errors[spec.Field] = key
			valid = false
			continue
		}
		delete(f.errors, spec.Field)
	}
	return valid
}

func cloneResult(r Result) Result {
	r.Errors = maps.Clone(r.Errors)
	return r
}
