// file: internals/helpers/workflow/workflow.go
//
// Generic status machine shared by posts, course enrollments, contact
// submissions and comments. Each entity declares its edge set once; guards
// and side effects stay in the entity services, next to the data they need.
package workflow

import (
	"nunchakuclub_backend/internals/helpers/errs"
)

type Edge[S ~string] struct {
	From S
	To   S
}

type Machine[S ~string] struct {
	entity  string
	edges   map[Edge[S]]struct{}
	fromAny map[S]struct{}
}

// New builds a machine for one entity kind. fromAny lists targets reachable
// from every state ("any -> archived" style edges); self-transitions are
// never allowed.
func New[S ~string](entity string, edges []Edge[S], fromAny ...S) *Machine[S] {
	m := &Machine[S]{
		entity:  entity,
		edges:   make(map[Edge[S]]struct{}, len(edges)),
		fromAny: make(map[S]struct{}, len(fromAny)),
	}
	for _, e := range edges {
		m.edges[e] = struct{}{}
	}
	for _, s := range fromAny {
		m.fromAny[s] = struct{}{}
	}
	return m
}

func (m *Machine[S]) Allowed(from, to S) bool {
	if from == to {
		return false
	}
	if _, ok := m.edges[Edge[S]{From: from, To: to}]; ok {
		return true
	}
	_, ok := m.fromAny[to]
	return ok
}

// Step validates one transition; errs.ErrIllegalTransition with the
// offending edge when (from, to) is not declared.
func (m *Machine[S]) Step(from, to S) error {
	if !m.Allowed(from, to) {
		return errs.IllegalTransitionf("%s: %s -> %s", m.entity, from, to)
	}
	return nil
}

// Detail renders a transition for activity-log details.
func (m *Machine[S]) Detail(from, to S) string {
	return string(from) + " -> " + string(to)
}
