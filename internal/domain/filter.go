package domain

// SanitizeFunc normalizes one raw filter token into canonical form.
type SanitizeFunc func(string) (string, error)

// Condition is one boolean condition over the forwarding table. The
// concrete variants below form a sealed set; the cache store translates
// them into its own parameterized query form.
type Condition interface {
	filterCondition()
}

// MatchAll matches every cached record. Used when no filters were
// requested: an unfiltered query must return the entire cache.
type MatchAll struct{}

// Membership matches records whose column value is in Values. Values are
// already sanitized.
type Membership struct {
	Column Column
	Values []string
}

// Placeholder is a positional equality condition whose value is bound at
// execution time, one value per streamed input line.
type Placeholder struct {
	Column Column
}

// Exclusion removes records observed on one (host, port) pair. It compiles
// to a negated conjunction: NOT (host = H AND port = P).
type Exclusion struct {
	Host string
	Port string
}

func (MatchAll) filterCondition()    {}
func (Membership) filterCondition()  {}
func (Placeholder) filterCondition() {}
func (Exclusion) filterCondition()   {}

// Binder pairs a streamed filter category with its sanitizer. Binders are
// applied to streamed input fields positionally, in the fixed category
// order mac, port, vlan.
type Binder struct {
	Column   Column
	Sanitize SanitizeFunc
}

// PredicateSet is the compiled form of one filter specification: an ordered
// conjunction of conditions plus the ordered binder list for streamed
// categories. Binder order matches the order Placeholder conditions appear
// in Conditions.
type PredicateSet struct {
	Conditions []Condition
	Binders    []Binder
}

// Streaming reports whether execution needs one bound value set per input
// line.
func (p *PredicateSet) Streaming() bool {
	return len(p.Binders) > 0
}
