package policy

// Resolver holds a set of path groups and resolves a document path to the
// best-matching group and its default options.
type Resolver struct {
	groups []*GroupBuilder
}

// NewResolver creates a Resolver from the supplied group builders.
func NewResolver(groups ...*GroupBuilder) *Resolver {
	return &Resolver{groups: groups}
}

// Resolve finds the best-matching group for path.
//
// Priority rules:
//   - Exact matches beat prefix matches, which beat regex matches.
//   - Among matches of the same kind the longer match wins.
//   - When two matches have equal kind and length the group that was
//     registered first (stable order) wins.
//
// If no group matches, ok is false.
func (res *Resolver) Resolve(path string) (groupName string, d *Defaults, ok bool) {
	bestKind := matchKind(-1)
	bestLen := -1

	for _, g := range res.groups {
		for _, r := range g.rules {
			matched, mLen := r.match(path)
			if !matched {
				continue
			}
			// A lower kind value means higher priority.
			better := bestKind < 0 ||
				r.kind < bestKind ||
				(r.kind == bestKind && mLen > bestLen)
			if better {
				bestKind = r.kind
				bestLen = mLen
				groupName = g.name
				d = g.defaults
				ok = true
			}
		}
	}
	return groupName, d, ok
}
