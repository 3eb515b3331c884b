// Package rewrite applies a reordering rule to file content.
package rewrite

import (
	"fmt"
	"regexp"

	"github.com/arena/gotofix/internal/domain"
)

// Result is the outcome of rewriting one piece of content.
type Result struct {
	Content string
	Matches int
	Changed bool
}

// Rewriter is a compiled domain.Rule.
type Rewriter struct {
	rule domain.Rule
	re   *regexp.Regexp
}

// Compile validates the rule and compiles its pattern.
func Compile(rule domain.Rule) (*Rewriter, error) {
	re, err := regexp.Compile(rule.Pattern)
	if err != nil {
		return nil, fmt.Errorf("compiling rule %s: %w", rule.Name, err)
	}
	if n := re.NumSubexp(); n != 2 {
		return nil, fmt.Errorf("compiling rule %s: pattern has %d capture groups, want 2", rule.Name, n)
	}
	return &Rewriter{rule: rule, re: re}, nil
}

// Default returns the compiled domain.DefaultRule.
func Default() *Rewriter {
	r, err := Compile(domain.DefaultRule())
	if err != nil {
		panic(err)
	}
	return r
}

// Rule returns the rule this rewriter was compiled from.
func (r *Rewriter) Rule() domain.Rule { return r.rule }

// Match reports whether content contains at least one occurrence of the rule.
func (r *Rewriter) Match(content string) bool {
	return r.re.MatchString(content)
}

// Rewrite replaces every non-overlapping occurrence of the rule.
func (r *Rewriter) Rewrite(content string) Result {
	locs := r.re.FindAllStringIndex(content, -1)
	if len(locs) == 0 {
		return Result{Content: content}
	}
	out := r.re.ReplaceAllString(content, r.rule.Replacement)
	return Result{
		Content: out,
		Matches: len(locs),
		Changed: out != content,
	}
}
