package clock

import "github.com/sarchlab/akita/v4/sim"

// Recorder is a hook that keeps the most recent edges.
type Recorder struct {
	limit int
	edges []Edge
}

// NewRecorder returns a Recorder keeping at most limit edges. A limit of 0
// keeps every edge.
func NewRecorder(limit int) *Recorder {
	return &Recorder{limit: limit}
}

// Func implements sim.Hook.
func (r *Recorder) Func(ctx sim.HookCtx) {
	if ctx.Pos != HookPosRisingEdge {
		return
	}
	e, ok := ctx.Item.(Edge)
	if !ok {
		return
	}
	r.edges = append(r.edges, e)
	if r.limit > 0 && len(r.edges) > r.limit {
		r.edges = r.edges[len(r.edges)-r.limit:]
	}
}

// Edges returns the recorded edges, oldest first.
func (r *Recorder) Edges() []Edge {
	out := make([]Edge, len(r.edges))
	copy(out, r.edges)
	return out
}

// Reset drops all recorded edges.
func (r *Recorder) Reset() {
	r.edges = r.edges[:0]
}
