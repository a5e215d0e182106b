package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uiverify/domain/entities"
)

func TestStepWrapsSentinel(t *testing.T) {
	step := entities.Step{Kind: entities.StepExpectURL, Description: "wait for dashboard"}
	cause := fmt.Errorf("url is http://localhost:5173/login: %w", ErrAssertion)

	err := Step(5, step, cause)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAssertion))
	assert.Equal(t, `step 6 (expect_url) "wait for dashboard": url is http://localhost:5173/login: assertion failed`, err.Error())

	stepErr, ok := FailedStep(err)
	require.True(t, ok)
	assert.Equal(t, 5, stepErr.Index)
	assert.Equal(t, entities.StepExpectURL, stepErr.Kind)
}

func TestStepNilError(t *testing.T) {
	assert.NoError(t, Step(0, entities.Step{}, nil))
}

func TestFailedStepWithoutStep(t *testing.T) {
	_, ok := FailedStep(ErrNavigation)
	assert.False(t, ok)
}

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"navigation", fmt.Errorf("goto: %w", ErrNavigation), ErrNavigation},
		{"wrapped in step", Step(2, entities.Step{Kind: entities.StepFill}, fmt.Errorf("fill: %w", ErrElementNotFound)), ErrElementNotFound},
		{"unrelated", errors.New("boom"), nil},
		{"nil", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Kind(tt.err))
		})
	}
}
