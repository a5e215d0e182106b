package verifier

import (
	"strings"

	"uiverify/domain/entities"
)

const (
	LoginScreenshot     = "login_page.png"
	DashboardScreenshot = "dashboard_page.png"
	PayScreenshot       = "pay_page.png"

	// LoginButtonName is the only control a run clicks.
	LoginButtonName = "Login"

	usernamePlaceholder = "Enter your username"
	passwordPlaceholder = "Enter your password"
	loginButtonRole     = "button"
)

// DefaultTarget is the local development instance of the payment app.
var DefaultTarget = entities.Target{
	BaseURL:  "http://localhost:5173",
	Username: "superadmin",
	Password: "admin123",
	RecordID: "6695285775f5e74b33343354",
}

// DefaultPlan returns the fixed login, dashboard and pay verification script.
func DefaultPlan() entities.Plan {
	return NewPlan(DefaultTarget)
}

// NewPlan builds the verification script against target.
func NewPlan(target entities.Target) entities.Plan {
	base := strings.TrimRight(target.BaseURL, "/")

	return entities.Plan{
		Name: "login-dashboard-pay",
		Steps: []entities.Step{
			{Kind: entities.StepNavigate, URL: base + "/login", Description: "open login page"},
			{Kind: entities.StepScreenshot, Artifact: LoginScreenshot, Description: "capture login page"},
			{Kind: entities.StepFill, Placeholder: usernamePlaceholder, Value: target.Username, Description: "fill username"},
			{Kind: entities.StepFill, Placeholder: passwordPlaceholder, Value: target.Password, Description: "fill password"},
			{Kind: entities.StepClick, Role: loginButtonRole, Name: LoginButtonName, Description: "submit login"},
			{Kind: entities.StepExpectURL, URL: base + "/admin/dashboard", Description: "wait for dashboard"},
			{Kind: entities.StepScreenshot, Artifact: DashboardScreenshot, Description: "capture dashboard"},
			{Kind: entities.StepNavigate, URL: base + "/pay/" + target.RecordID, Description: "open pay page"},
			{Kind: entities.StepScreenshot, Artifact: PayScreenshot, Description: "capture pay page"},
		},
	}
}
