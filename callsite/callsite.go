// Package callsite models where a validation call originated, so diagnostics
// can carry a human-readable trace back to the code that triggered them.
//
// A reference is an explicit tagged variant rather than a structurally
// sniffed value: a legacy numeric identifier for a completed call site, an
// in-progress unit of work, or a direct subject reference. Trace resolution
// switches on the tag and is always best-effort; a missing trace degrades to
// an empty string and never blocks a diagnostic.
package callsite

// RefKind tags the variant held by a Ref.
type RefKind int

const (
	// RefNone means no call-site information was supplied.
	RefNone RefKind = iota
	// RefLegacy refers to a completed call site by numeric identifier.
	RefLegacy
	// RefWork refers to an in-progress unit of work.
	RefWork
	// RefSubject refers directly to the subject being checked.
	RefSubject
)

// Work describes an in-progress unit of work. The numeric Tag is assigned by
// whatever scheduler drives validation; Parent links form the active chain.
// A Work value is only guaranteed to describe the live call chain while it is
// the currently-active unit; traces resolved outside that window may be
// incomplete.
type Work struct {
	Tag    int
	Name   string
	Parent *Work
}

// Ref is a tagged reference to the call site of a validation pass.
// The zero value is the "none" variant.
type Ref struct {
	kind     RefKind
	legacyID int
	work     *Work
	subject  any
}

// None returns an empty reference.
func None() Ref {
	return Ref{}
}

// Legacy wraps a numeric identifier for a completed call site.
func Legacy(id int) Ref {
	return Ref{kind: RefLegacy, legacyID: id}
}

// InProgress wraps an in-progress unit of work. A nil work yields the
// "none" variant.
func InProgress(work *Work) Ref {
	if work == nil {
		return Ref{}
	}

	return Ref{kind: RefWork, work: work}
}

// Subject wraps a direct reference to the subject being checked.
func Subject(subject any) Ref {
	if subject == nil {
		return Ref{}
	}

	return Ref{kind: RefSubject, subject: subject}
}

// Kind returns the variant tag.
func (r Ref) Kind() RefKind {
	return r.kind
}

// LegacyID returns the numeric identifier. Meaningful only for RefLegacy.
func (r Ref) LegacyID() int {
	return r.legacyID
}

// Work returns the in-progress unit of work. Meaningful only for RefWork.
func (r Ref) Work() *Work {
	return r.work
}

// Subject returns the subject reference. Meaningful only for RefSubject.
func (r Ref) Subject() any {
	return r.subject
}
