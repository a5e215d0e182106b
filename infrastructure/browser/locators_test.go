package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceholderSelector(t *testing.T) {
	assert.Equal(t,
		`input[placeholder="Enter your username"], textarea[placeholder="Enter your username"]`,
		placeholderSelector("Enter your username"))

	assert.Equal(t,
		`input[placeholder="say \"hi\""], textarea[placeholder="say \"hi\""]`,
		placeholderSelector(`say "hi"`))
}

func TestXPathLiteral(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Login", "'Login'"},
		{"Don't", `"Don't"`},
		{`it's "quoted"`, `concat('it', "'", 's "quoted"')`},
		{"'", `"'"`},
		{`'"`, `concat("'", '"')`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, xpathLiteral(tt.in))
		})
	}
}

func TestRoleXPath(t *testing.T) {
	xpath := roleXPath("button", "Login")

	assert.Contains(t, xpath, "//*[@role='button'][normalize-space(.)='Login' or @aria-label='Login' or @value='Login']")
	assert.Contains(t, xpath, "//button[not(@role)][normalize-space(.)='Login'")
	assert.Contains(t, xpath, "//input[@type='submit' or @type='button' or @type='reset'][not(@role)]")
}

func TestRoleXPathWithoutImplicitElements(t *testing.T) {
	assert.Equal(t,
		"//*[@role='tab'][normalize-space(.)='Orders' or @aria-label='Orders' or @value='Orders']",
		roleXPath("tab", "Orders"))
}
