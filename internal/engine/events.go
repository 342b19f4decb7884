package engine

import "github.com/piwi3910/tilefit/internal/model"

// Event kinds, using the compact tags the trace visualizer expects.
const (
	EventCommit    = "c"
	EventBacktrack = "b"
)

// Event is one step of the search as seen by an observer: either a commit
// of a placement at an instance position, or a backtrack away from one.
// The stream is a side channel only; recording it never changes the
// search outcome or ordering.
type Event struct {
	Kind     string       `json:"t"`
	Position int          `json:"p"`
	Shape    int          `json:"s"`
	Index    int          `json:"i"`
	Cells    []model.Cell `json:"cells,omitempty"`
}

// recorder accumulates events up to a cap, then drops the rest so that
// pathological searches cannot exhaust memory through their trace. A nil
// recorder discards everything, which is how the untraced solve runs.
type recorder struct {
	max    int // <= 0 means unlimited
	capped bool
	events []Event
}

func newRecorder(max int) *recorder {
	return &recorder{max: max}
}

func (r *recorder) commit(pos, shape, index int, cells []model.Cell) {
	if r == nil || r.capped {
		return
	}
	r.events = append(r.events, Event{
		Kind:     EventCommit,
		Position: pos,
		Shape:    shape,
		Index:    index,
		Cells:    cells,
	})
	r.checkCap()
}

func (r *recorder) backtrack(pos int) {
	if r == nil || r.capped {
		return
	}
	r.events = append(r.events, Event{Kind: EventBacktrack, Position: pos})
	r.checkCap()
}

func (r *recorder) checkCap() {
	if r.max > 0 && len(r.events) >= r.max {
		r.capped = true
	}
}
