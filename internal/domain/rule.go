package domain

import (
	"strings"

	"github.com/fatih/camelcase"
)

// DefaultDir is the test suite rewritten when no directory is given.
const DefaultDir = "/Users/chriskitch/Repos/arena/headless-wallet/test"

// DefaultGlob selects the files inside the target directory.
const DefaultGlob = "*.spec.js"

// space is Unicode whitespace. RE2's \s is ASCII-only, so \v, NBSP, NEL,
// the Z categories and the information separators are added explicitly.
const space = `[\s\v\p{Z}\x{85}\x{1c}-\x{1f}]`

// Rule describes a two-statement reordering. Pattern must have exactly two
// capture groups: the setup call and the navigation call that follows it.
type Rule struct {
	Name           string `json:"name"`
	SetupCall      string `json:"setup_call"`
	NavigationCall string `json:"navigation_call"`
	Pattern        string `json:"pattern"`
	Replacement    string `json:"replacement"`
}

// DefaultRule moves page.goto ahead of installHeadlessWallet.
//
// The pattern is a textual heuristic: [^)]+ and [^}]+ stop at the first
// closing paren or brace, so nested parens or braces in the wallet options
// are not matched.
func DefaultRule() Rule {
	return Rule{
		Name:           "goto-before-wallet",
		SetupCall:      "installHeadlessWallet",
		NavigationCall: "page.goto",
		Pattern:        `(await installHeadlessWallet\([^)]+\{[^}]+\}\);)` + space + `*\n` + space + `*(await page\.goto\([^)]+\);)`,
		Replacement:    "${2}\n\n    ${1}",
	}
}

// Describe returns a human-readable summary of the rule.
func (r Rule) Describe() string {
	words := camelcase.Split(r.SetupCall)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return "move " + r.NavigationCall + " ahead of " + strings.Join(words, " ")
}
