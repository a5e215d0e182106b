package security

import (
	"fmt"
	"strings"

	"uiverify/domain/entities"
	"uiverify/domain/errs"
	"uiverify/domain/interfaces"
)

// A run only observes the app. Clicking anything that pays, deletes or
// submits business data is refused.
var (
	paymentKeywords = []string{
		"pay", "checkout", "purchase", "buy", "order", "confirm",
	}
	destructiveKeywords = []string{
		"delete", "remove", "trash", "clear", "reset", "cancel", "revoke",
	}
)

type guard struct {
	allowed map[string]bool
}

// NewStepGuard - creates guard that accepts clicks on the allowed names
// and refuses payment or destructive ones
func NewStepGuard(allowed ...string) interfaces.StepGuard {
	g := &guard{allowed: make(map[string]bool, len(allowed))}
	for _, name := range allowed {
		g.allowed[strings.ToLower(name)] = true
	}
	return g
}

// Check - refuses steps that could change state in the target app
func (g *guard) Check(step entities.Step) error {
	switch step.Kind {
	case entities.StepClick:
		name := strings.ToLower(strings.TrimSpace(step.Name))
		if g.allowed[name] {
			return nil
		}
		if kw, ok := matchKeyword(name, paymentKeywords); ok {
			return fmt.Errorf("click on %q looks like a payment action (%s): %w", step.Name, kw, errs.ErrUnsafeStep)
		}
		if kw, ok := matchKeyword(name, destructiveKeywords); ok {
			return fmt.Errorf("click on %q looks destructive (%s): %w", step.Name, kw, errs.ErrUnsafeStep)
		}
	case entities.StepFill:
		if step.Placeholder == "" {
			return nil
		}
		lower := strings.ToLower(step.Placeholder)
		for _, kw := range []string{"card", "cvv", "upi pin", "otp"} {
			if strings.Contains(lower, kw) {
				return fmt.Errorf("fill of %q touches payment details: %w", step.Placeholder, errs.ErrUnsafeStep)
			}
		}
	}
	return nil
}

func matchKeyword(s string, keywords []string) (string, bool) {
	for _, word := range strings.FieldsFunc(s, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	}) {
		for _, kw := range keywords {
			if strings.HasPrefix(word, kw) {
				return kw, true
			}
		}
	}
	return "", false
}
