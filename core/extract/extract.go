// Package extract provides named regular-expression extraction rules.
//
// Rules match exact tag shapes of the generated corpus. Each Rule records the
// structural assumption its pattern depends on, and may carry a guard that
// rejects captures violating it (a nested <div> inside a block assumed never
// to nest). A violated guard is an ExtractionError.
package extract

import (
	"fmt"
	"regexp"

	"github.com/FocuswithJustin/webbible/core/errors"
)

// Rule is a named extraction pattern.
type Rule struct {
	// Name identifies the rule in errors and logs.
	Name string

	// Assumption documents the corpus shape the pattern relies on.
	Assumption string

	re     *regexp.Regexp
	group  int
	forbid *regexp.Regexp
}

// New compiles a rule. It panics on an invalid expression, like regexp.MustCompile.
func New(name, expr, assumption string) *Rule {
	return &Rule{
		Name:       name,
		Assumption: assumption,
		re:         regexp.MustCompile(expr),
	}
}

// Forbid makes the rule fail when capture group contains a match of expr.
func (r *Rule) Forbid(group int, expr string) *Rule {
	r.group = group
	r.forbid = regexp.MustCompile(expr)
	return r
}

// Match is one match of a rule: its byte span in the input and its submatches.
type Match struct {
	Start  int
	End    int
	Groups []string
}

// Group returns submatch i, or "" if it did not participate.
func (m Match) Group(i int) string {
	if i >= len(m.Groups) {
		return ""
	}
	return m.Groups[i]
}

// Find returns the first match and its submatches.
func (r *Rule) Find(s string) ([]string, bool) {
	m := r.re.FindStringSubmatch(s)
	return m, m != nil
}

// Require is Find, but a missing match is an ExtractionError for path.
func (r *Rule) Require(path, s string) ([]string, error) {
	m, ok := r.Find(s)
	if !ok {
		return nil, errors.NewExtraction(r.Name, path, "no match")
	}
	if err := r.check(path, m); err != nil {
		return nil, err
	}
	return m, nil
}

// FindAll returns all matches in source order, checking every capture
// against the rule's guard.
func (r *Rule) FindAll(path, s string) ([]Match, error) {
	locs := r.re.FindAllStringSubmatchIndex(s, -1)
	out := make([]Match, 0, len(locs))
	for _, loc := range locs {
		m := Match{Start: loc[0], End: loc[1], Groups: make([]string, len(loc)/2)}
		for i := range m.Groups {
			if loc[2*i] >= 0 {
				m.Groups[i] = s[loc[2*i]:loc[2*i+1]]
			}
		}
		if err := r.check(path, m.Groups); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// ReplaceAll applies the rule's pattern as a template substitution.
func (r *Rule) ReplaceAll(s, template string) string {
	return r.re.ReplaceAllString(s, template)
}

// ReplaceAllFunc replaces every match with fn applied to its submatches.
func (r *Rule) ReplaceAllFunc(s string, fn func(groups []string) string) string {
	return r.re.ReplaceAllStringFunc(s, func(m string) string {
		return fn(r.re.FindStringSubmatch(m))
	})
}

// Remove deletes every match.
func (r *Rule) Remove(s string) string {
	return r.re.ReplaceAllLiteralString(s, "")
}

func (r *Rule) check(path string, m []string) error {
	if r.forbid == nil || r.group >= len(m) {
		return nil
	}
	if loc := r.forbid.FindStringIndex(m[r.group]); loc != nil {
		return errors.NewExtraction(r.Name, path,
			fmt.Sprintf("assumption violated (%s): found %q", r.Assumption, m[r.group][loc[0]:loc[1]]))
	}
	return nil
}
