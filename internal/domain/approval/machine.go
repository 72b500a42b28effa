package approval

import "fmt"

// Status is the integer status code a record type uses on the wire.
type Status interface {
	~int
}

// Action names a transition.
type Action string

const (
	ActionApprove    Action = "approve"
	ActionReject     Action = "reject"
	ActionHRDApprove Action = "hrd_approve"
)

// Transition moves a record from one status to another.
type Transition[S Status] struct {
	Action Action
	From   S
	To     S
}

// Machine is a table-driven approval lifecycle. Statuses on the progress line
// are totally ordered; statuses off the line (for example rejected) are
// terminal side branches.
type Machine[S Status] struct {
	name        string
	line        []S
	rank        map[S]int
	transitions map[Action]Transition[S]
}

// NewMachine builds a machine. It panics when a transition on the progress line
// would move a record backward, since that is a table bug and not a runtime
// condition.
func NewMachine[S Status](name string, line []S, transitions ...Transition[S]) *Machine[S] {
	m := &Machine[S]{
		name:        name,
		line:        line,
		rank:        make(map[S]int, len(line)),
		transitions: make(map[Action]Transition[S], len(transitions)),
	}
	for i, s := range line {
		m.rank[s] = i
	}
	for _, t := range transitions {
		from, fromOK := m.rank[t.From]
		to, toOK := m.rank[t.To]
		if fromOK && toOK && to <= from {
			panic(fmt.Sprintf("approval: %s transition %s moves backward (%d -> %d)", name, t.Action, t.From, t.To))
		}
		m.transitions[t.Action] = t
	}
	return m
}

// Name identifies the record type the machine governs.
func (m *Machine[S]) Name() string {
	return m.name
}

// Outcome is the result of planning a transition.
type Outcome[S Status] struct {
	From S
	To   S
	// NoOp is set when the record is already at or past the target; the caller
	// must not contact the backend.
	NoOp bool
}

// Plan decides what applying action to a record in status current means.
// A repeated transition is an idempotent no-op. Anything else that does not
// start from the transition's source status is ErrIllegalTransition.
func (m *Machine[S]) Plan(current S, action Action) (Outcome[S], error) {
	t, ok := m.transitions[action]
	if !ok {
		return Outcome[S]{}, fmt.Errorf("%s %s: %w", m.name, action, ErrUnknownAction)
	}

	if current == t.From {
		return Outcome[S]{From: current, To: t.To}, nil
	}

	if current == t.To || m.isPast(current, t.To) {
		return Outcome[S]{From: current, To: current, NoOp: true}, nil
	}

	return Outcome[S]{}, fmt.Errorf("%s %s from status %d: %w", m.name, action, current, ErrIllegalTransition)
}

// CanApply reports whether action would issue a backend call for current.
func (m *Machine[S]) CanApply(current S, action Action) bool {
	out, err := m.Plan(current, action)
	return err == nil && !out.NoOp
}

// IsTerminal reports whether no transition leaves s.
func (m *Machine[S]) IsTerminal(s S) bool {
	for _, t := range m.transitions {
		if t.From == s {
			return false
		}
	}
	return true
}

func (m *Machine[S]) isPast(current, target S) bool {
	c, cOK := m.rank[current]
	t, tOK := m.rank[target]
	return cOK && tOK && c > t
}
