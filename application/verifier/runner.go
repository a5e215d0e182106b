package verifier

import (
	"context"
	"fmt"
	"time"

	"uiverify/domain/entities"
	"uiverify/domain/errs"
	"uiverify/domain/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

type Runner struct {
	browser interfaces.Browser
	store   interfaces.ArtifactStore
	guard   interfaces.StepGuard
	logger  *logrus.Logger
	now     func() time.Time
}

// NewRunner - creates new runner instance; guard may be nil
func NewRunner(browser interfaces.Browser, store interfaces.ArtifactStore, guard interfaces.StepGuard, logger *logrus.Logger) *Runner {
	return &Runner{
		browser: browser,
		store:   store,
		guard:   guard,
		logger:  logger,
		now:     time.Now,
	}
}

// Run - executes the plan in order and stops at the first failing step.
// The report is always returned, even when err is not nil.
func (r *Runner) Run(ctx context.Context, plan entities.Plan) (report *entities.RunReport, err error) {
	report = &entities.RunReport{
		RunID:     uuid.NewString(),
		Plan:      plan.Name,
		Driver:    r.browser.Name(),
		Status:    entities.RunStatusRunning,
		StartedAt: r.now(),
	}
	log := r.logger.WithFields(logrus.Fields{
		"run_id": report.RunID,
		"driver": report.Driver,
	})

	defer func() {
		report.FinishedAt = r.now()
		if err != nil {
			report.Status = entities.RunStatusFailed
			report.Error = err.Error()
			log.WithError(err).Error("Verification failed")
			return
		}
		report.Status = entities.RunStatusSucceeded
		log.Infof("Verification finished: %d screenshots", len(report.Artifacts))
	}()

	if r.guard != nil {
		for i, step := range plan.Steps {
			if err := r.guard.Check(step); err != nil {
				return report, errs.Step(i, step, err)
			}
		}
	}

	log.Infof("Launching browser for plan %s", plan.Name)
	session, err := r.browser.Launch(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to launch browser: %w", err)
	}
	defer func() {
		if closeErr := session.Close(); closeErr != nil {
			log.WithError(closeErr).Warn("Failed to close browser")
			err = multierr.Append(err, fmt.Errorf("failed to close browser: %w", closeErr))
		}
	}()

	for i, step := range plan.Steps {
		select {
		case <-ctx.Done():
			return report, errs.Step(i, step, fmt.Errorf("run canceled: %w", ctx.Err()))
		default:
		}

		stepLog := log.WithFields(logrus.Fields{"step": i + 1, "kind": step.Kind})
		stepLog.Info(step.Description)

		started := r.now()
		artifact, stepErr := r.executeStep(ctx, session, step)
		result := entities.StepResult{
			Index:       i,
			Kind:        step.Kind,
			Description: step.Description,
			Duration:    r.now().Sub(started),
		}
		if stepErr != nil {
			result.Error = stepErr.Error()
			report.Steps = append(report.Steps, result)
			return report, errs.Step(i, step, stepErr)
		}
		report.Steps = append(report.Steps, result)

		if artifact != nil {
			report.Artifacts = append(report.Artifacts, *artifact)
			stepLog.Infof("Screenshot saved: %s", artifact.Path)
		}
	}

	return report, nil
}

// executeStep - executes single step, returning the artifact for screenshots
func (r *Runner) executeStep(ctx context.Context, session interfaces.Session, step entities.Step) (*entities.Artifact, error) {
	switch step.Kind {
	case entities.StepNavigate:
		if step.URL == "" {
			return nil, fmt.Errorf("url is required for navigate step: %w", errs.ErrInvalidStep)
		}
		return nil, session.Goto(ctx, step.URL)

	case entities.StepFill:
		if step.Placeholder == "" {
			return nil, fmt.Errorf("placeholder is required for fill step: %w", errs.ErrInvalidStep)
		}
		return nil, session.FillByPlaceholder(ctx, step.Placeholder, step.Value)

	case entities.StepClick:
		if step.Role == "" || step.Name == "" {
			return nil, fmt.Errorf("role and name are required for click step: %w", errs.ErrInvalidStep)
		}
		return nil, session.ClickByRole(ctx, step.Role, step.Name)

	case entities.StepExpectURL:
		if step.URL == "" {
			return nil, fmt.Errorf("url is required for expect_url step: %w", errs.ErrInvalidStep)
		}
		return nil, session.ExpectURL(ctx, step.URL)

	case entities.StepScreenshot:
		if step.Artifact == "" {
			return nil, fmt.Errorf("artifact is required for screenshot step: %w", errs.ErrInvalidStep)
		}
		data, err := session.Screenshot(ctx)
		if err != nil {
			return nil, err
		}
		artifact, err := r.store.Save(step.Artifact, data)
		if err != nil {
			return nil, err
		}
		return &artifact, nil

	default:
		return nil, fmt.Errorf("unknown step kind %q: %w", step.Kind, errs.ErrInvalidStep)
	}
}
