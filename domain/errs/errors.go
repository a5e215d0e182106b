// Package errs holds the error taxonomy of a verification run.
package errs

import (
	"errors"
	"fmt"

	"uiverify/domain/entities"
)

var (
	ErrBrowserLaunch   = errors.New("browser launch failed")
	ErrNavigation      = errors.New("navigation failed")
	ErrElementNotFound = errors.New("element not found")
	ErrAssertion       = errors.New("assertion failed")
	ErrScreenshot      = errors.New("screenshot failed")
	ErrArtifact        = errors.New("artifact write failed")
	ErrUnknownDriver   = errors.New("unknown browser driver")
	ErrInvalidStep     = errors.New("invalid step")
	ErrUnsafeStep      = errors.New("unsafe step")
)

// StepError reports which step of a plan failed.
type StepError struct {
	Index       int
	Kind        entities.StepKind
	Description string
	Err         error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s) %q: %v", e.Index+1, e.Kind, e.Description, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Step wraps err with the position and kind of the failing step.
func Step(index int, step entities.Step, err error) error {
	if err == nil {
		return nil
	}
	return &StepError{Index: index, Kind: step.Kind, Description: step.Description, Err: err}
}

// FailedStep returns the failing step of err, if any.
func FailedStep(err error) (*StepError, bool) {
	var stepErr *StepError
	if errors.As(err, &stepErr) {
		return stepErr, true
	}
	return nil, false
}

// Kind maps err to the first matching sentinel, or nil.
func Kind(err error) error {
	for _, sentinel := range []error{
		ErrBrowserLaunch,
		ErrNavigation,
		ErrElementNotFound,
		ErrAssertion,
		ErrScreenshot,
		ErrArtifact,
		ErrUnknownDriver,
		ErrInvalidStep,
		ErrUnsafeStep,
	} {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}
	return nil
}
