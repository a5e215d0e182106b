package interfaces

import "uiverify/domain/entities"

// StepGuard vets a plan before any browser is launched
type StepGuard interface {
	// Check returns an error if the step could change state in the target app
	Check(step entities.Step) error
}
