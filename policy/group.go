// Package policy maps document paths to default cache and retry options.
// Paths are grouped by exact, prefix, or regex rules; a call that supplies
// no explicit options picks up the defaults of the best-matching group.
package policy

import (
	"regexp"

	"github.com/Keksclan/snapfetch/doccache"
	"github.com/Keksclan/snapfetch/retry"
)

// Defaults holds the per-call options applied to a matched path group.
// Nil fields leave the corresponding behavior off.
type Defaults struct {
	Cache *doccache.Options
	Retry *retry.Config
}

// matchKind distinguishes the three matching strategies.
type matchKind int

const (
	kindExact  matchKind = iota // highest priority
	kindPrefix                  // medium priority
	kindRegex                   // lowest priority
)

// rule is a single matching rule inside a group.
type rule struct {
	kind    matchKind
	pattern string         // used for exact and prefix matches
	re      *regexp.Regexp // used for regex matches
}

// GroupBuilder constructs a path group with one or more matching rules and
// a set of defaults.
type GroupBuilder struct {
	name     string
	rules    []rule
	defaults *Defaults
}

// Group starts building a new path group with the given name.
func Group(name string) *GroupBuilder {
	return &GroupBuilder{name: name}
}

// Exact adds an exact-match rule for the given document path.
func (g *GroupBuilder) Exact(path string) *GroupBuilder {
	g.rules = append(g.rules, rule{kind: kindExact, pattern: path})
	return g
}

// Prefix adds a prefix-match rule, typically a collection prefix such as
// "users/".
func (g *GroupBuilder) Prefix(pathPrefix string) *GroupBuilder {
	g.rules = append(g.rules, rule{kind: kindPrefix, pattern: pathPrefix})
	return g
}

// Regex adds a regex-match rule for document paths.
// The pattern is compiled immediately; an invalid regex will panic.
func (g *GroupBuilder) Regex(pattern string) *GroupBuilder {
	g.rules = append(g.rules, rule{kind: kindRegex, pattern: pattern, re: regexp.MustCompile(pattern)})
	return g
}

// Defaults attaches the default options to the group and returns the
// finished builder.
func (g *GroupBuilder) Defaults(d Defaults) *GroupBuilder {
	g.defaults = &d
	return g
}
