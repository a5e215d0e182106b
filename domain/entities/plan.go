package entities

// Target identifies the application under verification
type Target struct {
	BaseURL  string
	Username string
	Password string
	RecordID string
}

// Plan is an ordered, fixed list of steps
type Plan struct {
	Name  string
	Steps []Step
}

// Screenshots returns the artifact names the plan captures, in order
func (p Plan) Screenshots() []string {
	var names []string
	for _, s := range p.Steps {
		if s.Kind == StepScreenshot {
			names = append(names, s.Artifact)
		}
	}
	return names
}
