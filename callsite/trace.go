package callsite

import (
	"fmt"
	"strings"
	"sync"
)

// Provider resolves a human-readable trace of the active call chain for each
// reference variant. Implementations return an empty string when no trace is
// available; they must not fail.
type Provider interface {
	// TraceByID resolves a trace for a completed call site by identifier.
	TraceByID(id int) string

	// TraceByWork resolves a trace for an in-progress unit of work. Only
	// reliable while the unit is the currently-active one.
	TraceByWork(work *Work) string

	// TraceBySubject resolves a trace from a direct subject reference.
	TraceBySubject(subject any) string
}

// Named is implemented by subjects that can report their own display name.
type Named interface {
	DisplayName() string
}

// NoopProvider resolves every reference to an empty trace.
type NoopProvider struct{}

var _ Provider = NoopProvider{}

func (NoopProvider) TraceByID(int) string      { return "" }
func (NoopProvider) TraceByWork(*Work) string  { return "" }
func (NoopProvider) TraceBySubject(any) string { return "" }

// Registry is a Provider backed by recorded call-site frames and a pointer
// to the currently-active unit of work. The driving process records frames
// for completed call sites and flips the current unit as it works.
type Registry struct {
	mutex   sync.Mutex
	frames  map[int]string
	current *Work
}

var _ Provider = (*Registry)(nil)

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		frames: make(map[int]string),
	}
}

// RecordFrame stores the trace for a completed call site. Re-recording the
// same identifier overwrites the previous trace.
func (r *Registry) RecordFrame(id int, trace string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.frames[id] = trace
}

// SetCurrent marks the given unit of work as the one actively being
// processed. Pass nil to clear.
func (r *Registry) SetCurrent(work *Work) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.current = work
}

// TraceByID returns the recorded trace for the identifier, or "".
func (r *Registry) TraceByID(id int) string {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.frames[id]
}

// TraceByWork walks the parent chain of the currently-active unit. Asking
// about a unit that is not currently active returns "", since its chain can
// no longer be trusted.
func (r *Registry) TraceByWork(work *Work) string {
	if work == nil {
		return ""
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.current != work {
		return ""
	}

	return chain(work)
}

// TraceBySubject formats a single-frame trace from the subject itself,
// preferring its display name when it has one.
func (r *Registry) TraceBySubject(subject any) string {
	if subject == nil {
		return ""
	}

	if named, ok := subject.(Named); ok {
		return frame(named.DisplayName())
	}

	return frame(fmt.Sprintf("%T", subject))
}

// chain renders a unit of work and its ancestors, innermost first.
func chain(work *Work) string {
	var sb strings.Builder

	for w := work; w != nil; w = w.Parent {
		name := w.Name
		if name == "" {
			name = "Unknown"
		}

		sb.WriteString(frame(name))
	}

	return sb.String()
}

// frame renders one trace line. The leading newline lets the engine append
// traces to a diagnostic as a suffix, empty traces adding nothing.
func frame(name string) string {
	return "\n    in " + name
}
