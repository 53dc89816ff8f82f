package murphy

import "sort"

// Tier names one of the three compartments of a Self.
type Tier string

const (
	TierPrivate   Tier = "private"
	TierProtected Tier = "protected"
	TierPublic    Tier = "public"
)

// Tiers lists the compartments in declaration order.
var Tiers = []Tier{TierPrivate, TierProtected, TierPublic}

// Members is an open-ended set of named fields.
type Members map[string]any

// Get returns the value stored under name and whether it was present.
func (m Members) Get(name string) (any, bool) {
	v, ok := m[name]
	return v, ok
}

// Has reports whether name is present.
func (m Members) Has(name string) bool {
	_, ok := m[name]
	return ok
}

// Set stores value under name. Set on a nil Members panics.
func (m Members) Set(name string, value any) {
	m[name] = value
}

// Delete removes name.
func (m Members) Delete(name string) {
	delete(m, name)
}

// Len returns the number of fields.
func (m Members) Len() int {
	return len(m)
}

// Keys returns the field names in sorted order.
func (m Members) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Self is the member container handed to a Body. Protected and Public are
// shared with every other level of the same instantiation; Private belongs to
// the current level alone.
type Self struct {
	Private   Members
	Protected Members
	Public    Members
}

// Tier returns the compartment named by t, or nil for an unknown tier.
func (s *Self) Tier(t Tier) Members {
	switch t {
	case TierPrivate:
		return s.Private
	case TierProtected:
		return s.Protected
	case TierPublic:
		return s.Public
	default:
		return nil
	}
}

// Body initializes one level of an instance. args are the arguments the
// instantiation was called with.
type Body func(self *Self, args ...any)
