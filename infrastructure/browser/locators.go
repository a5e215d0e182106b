package browser

import (
	"fmt"
	"strings"
	"time"
)

// Playwright's default timeouts, applied explicitly by the drivers that have none.
const (
	defaultActionTimeout = 30 * time.Second
	defaultExpectTimeout = 5 * time.Second
	pollInterval         = 100 * time.Millisecond
)

// implicitRoles lists the elements that carry a role without a role attribute.
var implicitRoles = map[string][]string{
	"button":   {"button", "input[@type='submit' or @type='button' or @type='reset']"},
	"link":     {"a[@href]"},
	"textbox":  {"textarea", "input[not(@type) or @type='text' or @type='email' or @type='password']"},
	"checkbox": {"input[@type='checkbox']"},
}

// placeholderSelector - CSS selector for inputs with the exact placeholder
func placeholderSelector(placeholder string) string {
	q := cssString(placeholder)
	return fmt.Sprintf("input[placeholder=%s], textarea[placeholder=%s]", q, q)
}

// roleXPath - XPath for elements with the given role whose accessible name is name.
// The accessible name is approximated by normalized text, aria-label or value.
func roleXPath(role, name string) string {
	n := xpathLiteral(name)
	named := fmt.Sprintf("[normalize-space(.)=%s or @aria-label=%s or @value=%s]", n, n, n)

	parts := []string{fmt.Sprintf("//*[@role=%s]%s", xpathLiteral(role), named)}
	for _, el := range implicitRoles[role] {
		parts = append(parts, fmt.Sprintf("//%s[not(@role)]%s", el, named))
	}
	return strings.Join(parts, " | ")
}

// cssString - quotes s as a CSS string
func cssString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\a `)
	return `"` + r.Replace(s) + `"`
}

// xpathLiteral - quotes s as an XPath 1.0 literal, which has no escapes
func xpathLiteral(s string) string {
	if !strings.Contains(s, "'") {
		return "'" + s + "'"
	}
	if !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}

	parts := strings.Split(s, "'")
	quoted := make([]string, 0, len(parts)*2)
	for i, p := range parts {
		if i > 0 {
			quoted = append(quoted, `"'"`)
		}
		if p != "" {
			quoted = append(quoted, "'"+p+"'")
		}
	}
	return "concat(" + strings.Join(quoted, ", ") + ")"
}
