// Package location enumerates the semantic categories of values the engine
// checks, and resolves each category to the display name used in diagnostics.
package location

// Kind is the semantic category of the values being checked.
type Kind int

const (
	// Prop marks values supplied directly to the subject.
	Prop Kind = iota
	// Context marks values received from an enclosing scope.
	Context
	// ChildContext marks values a subject publishes to its children.
	ChildContext
)

// String implements fmt.Stringer using the default display names.
func (k Kind) String() string {
	return DefaultResolver{}.Name(k)
}

// Resolver maps a Kind to the display string used in diagnostic messages.
// Implementations must return a non-empty name for every enumerated Kind.
type Resolver interface {
	Name(kind Kind) string
}

// DefaultResolver covers all enumerated kinds. Unknown kinds resolve to
// "value" rather than failing, since resolver output only feeds messages.
type DefaultResolver struct{}

var _ Resolver = DefaultResolver{}

// Name returns the display name for the given kind.
func (DefaultResolver) Name(kind Kind) string {
	switch kind {
	case Prop:
		return "prop"
	case Context:
		return "context"
	case ChildContext:
		return "child context"
	default:
		return "value"
	}
}
