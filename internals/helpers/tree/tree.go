// file: internals/helpers/tree/tree.go
//
// Generic self-referential hierarchy engine shared by categories, pages,
// menu items and comments. Nodes form an adjacency list: every node has an
// optional parent of the same kind plus an integer position among its
// siblings. All traversal is iterative with a visited-set guard; a cycle in
// stored data is reported, never looped over.
package tree

import (
	"context"
	"iter"

	"github.com/google/uuid"

	"nunchakuclub_backend/internals/helpers/errs"
)

/* =========================================================
   NODE & STORE
========================================================= */

type Node struct {
	ID       uuid.UUID
	ParentID *uuid.UUID
	Position int
}

// Store is the minimal persistence surface the engine needs. GormStore is
// the production implementation; tests use an in-memory one. Callers are
// expected to hand in a Store bound to one storage transaction so each
// operation is atomic.
type Store interface {
	// Node resolves one node; errs.ErrNotFound when absent.
	Node(ctx context.Context, id uuid.UUID) (Node, error)
	// Children returns direct children of parentID (nil = roots),
	// position ascending, creation time as tiebreak.
	Children(ctx context.Context, parentID *uuid.UUID) ([]Node, error)
	SetParent(ctx context.Context, id uuid.UUID, parentID *uuid.UUID, position int) error
	SetPosition(ctx context.Context, id uuid.UUID, position int) error
	Delete(ctx context.Context, id uuid.UUID) error
}

/* =========================================================
   DETACH POLICY
========================================================= */

type DetachPolicy int

const (
	// PolicyBlock refuses deletion while direct children exist.
	PolicyBlock DetachPolicy = iota
	// PolicyCascade deletes the node and its whole subtree.
	PolicyCascade
	// PolicyReparent moves direct children to a new parent first.
	PolicyReparent
)

/* =========================================================
   OPERATIONS
========================================================= */

// Attach sets node's parent to parentID, appending it at the end of the new
// sibling order unless an explicit position is supplied.
//
// The cycle check walks UP from the candidate parent: the ancestor chain of
// the attachment point is bounded by tree depth, not tree size.
func Attach(ctx context.Context, s Store, nodeID, parentID uuid.UUID, position *int) error {
	if nodeID == parentID {
		return errs.Cyclef("node %s cannot be its own parent", nodeID)
	}
	if _, err := s.Node(ctx, nodeID); err != nil {
		return err
	}
	parent, err := s.Node(ctx, parentID)
	if err != nil {
		return err
	}

	visited := map[uuid.UUID]bool{parentID: true}
	cur := parent
	for cur.ParentID != nil {
		anc := *cur.ParentID
		if anc == nodeID {
			return errs.Cyclef("%s is an ancestor of candidate parent %s", nodeID, parentID)
		}
		if visited[anc] {
			// stored data already cyclic; refuse to make it worse
			return errs.Cyclef("ancestor chain of %s loops at %s", parentID, anc)
		}
		visited[anc] = true
		cur, err = s.Node(ctx, anc)
		if err != nil {
			return err
		}
	}

	pos := 0
	if position != nil {
		pos = *position
	} else {
		siblings, err := s.Children(ctx, &parentID)
		if err != nil {
			return err
		}
		pos = nextPosition(siblings)
	}
	return s.SetParent(ctx, nodeID, &parentID, pos)
}

// MoveToRoot clears node's parent and appends it to the root sibling order.
func MoveToRoot(ctx context.Context, s Store, nodeID uuid.UUID) error {
	if _, err := s.Node(ctx, nodeID); err != nil {
		return err
	}
	roots, err := s.Children(ctx, nil)
	if err != nil {
		return err
	}
	return s.SetParent(ctx, nodeID, nil, nextPosition(roots))
}

// Reorder rewrites the sibling order under one parent. orderedIDs must
// match the current children set exactly (no omissions, extras or
// duplicates); positions are reassigned sequentially from 1.
func Reorder(ctx context.Context, s Store, parentID *uuid.UUID, orderedIDs []uuid.UUID) error {
	children, err := s.Children(ctx, parentID)
	if err != nil {
		return err
	}
	if len(orderedIDs) != len(children) {
		return errs.InvalidOrderf("got %d ids, parent has %d children", len(orderedIDs), len(children))
	}
	current := make(map[uuid.UUID]bool, len(children))
	for _, c := range children {
		current[c.ID] = true
	}
	seen := make(map[uuid.UUID]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		if !current[id] {
			return errs.InvalidOrderf("%s is not a child of this parent", id)
		}
		if seen[id] {
			return errs.InvalidOrderf("%s listed twice", id)
		}
		seen[id] = true
	}
	for i, id := range orderedIDs {
		if err := s.SetPosition(ctx, id, i+1); err != nil {
			return err
		}
	}
	return nil
}

// Detach removes node according to policy.
//
//   - PolicyBlock: errs.ErrHasChildren when direct children exist.
//   - PolicyCascade: deletes the whole subtree, leaf-first.
//   - PolicyReparent: re-attaches direct children to reparentTo (nil means
//     node's own parent, so children float up one level) before deleting
//     node. The move runs through Attach, so the usual cycle and existence
//     checks apply.
func Detach(ctx context.Context, s Store, nodeID uuid.UUID, policy DetachPolicy, reparentTo *uuid.UUID) error {
	node, err := s.Node(ctx, nodeID)
	if err != nil {
		return err
	}
	children, err := s.Children(ctx, &nodeID)
	if err != nil {
		return err
	}

	switch policy {
	case PolicyBlock:
		if len(children) > 0 {
			return errs.ErrHasChildren
		}

	case PolicyCascade:
		// collect the subtree iteratively, then delete deepest-first;
		// ordered[0] is nodeID itself, so the shared epilogue delete
		// below must not run again
		ordered, err := collectSubtree(ctx, s, nodeID, children)
		if err != nil {
			return err
		}
		for i := len(ordered) - 1; i >= 0; i-- {
			if err := s.Delete(ctx, ordered[i]); err != nil {
				return err
			}
		}
		return nil

	case PolicyReparent:
		target := reparentTo
		if target == nil {
			target = node.ParentID
		}
		for _, c := range children {
			if target == nil {
				if err := MoveToRoot(ctx, s, c.ID); err != nil {
					return err
				}
				continue
			}
			if err := Attach(ctx, s, c.ID, *target, nil); err != nil {
				return err
			}
		}
	}

	return s.Delete(ctx, nodeID)
}

// Ancestors yields node's ancestor chain, nearest first. The node itself is
// never yielded. Lazy: the walk advances only as the consumer pulls.
func Ancestors(ctx context.Context, s Store, nodeID uuid.UUID) iter.Seq2[Node, error] {
	return func(yield func(Node, error) bool) {
		node, err := s.Node(ctx, nodeID)
		if err != nil {
			yield(Node{}, err)
			return
		}
		visited := map[uuid.UUID]bool{nodeID: true}
		for node.ParentID != nil {
			pid := *node.ParentID
			if visited[pid] {
				yield(Node{}, errs.Cyclef("ancestor chain of %s loops at %s", nodeID, pid))
				return
			}
			visited[pid] = true
			parent, err := s.Node(ctx, pid)
			if err != nil {
				yield(Node{}, err)
				return
			}
			if !yield(parent, nil) {
				return
			}
			node = parent
		}
	}
}

// Descendants yields node's subtree breadth-first (nearest level first),
// siblings in position order. The node itself is never yielded.
func Descendants(ctx context.Context, s Store, nodeID uuid.UUID) iter.Seq2[Node, error] {
	return func(yield func(Node, error) bool) {
		if _, err := s.Node(ctx, nodeID); err != nil {
			yield(Node{}, err)
			return
		}
		visited := map[uuid.UUID]bool{nodeID: true}
		queue := []uuid.UUID{nodeID}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			children, err := s.Children(ctx, &cur)
			if err != nil {
				yield(Node{}, err)
				return
			}
			for _, c := range children {
				if visited[c.ID] {
					yield(Node{}, errs.Cyclef("subtree of %s loops at %s", nodeID, c.ID))
					return
				}
				visited[c.ID] = true
				if !yield(c, nil) {
					return
				}
				queue = append(queue, c.ID)
			}
		}
	}
}

/* =========================================================
   INTERNALS
========================================================= */

func nextPosition(siblings []Node) int {
	max := 0
	for _, s := range siblings {
		if s.Position > max {
			max = s.Position
		}
	}
	return max + 1
}

// collectSubtree returns nodeID plus every descendant id in BFS order.
func collectSubtree(ctx context.Context, s Store, nodeID uuid.UUID, direct []Node) ([]uuid.UUID, error) {
	ordered := []uuid.UUID{nodeID}
	visited := map[uuid.UUID]bool{nodeID: true}
	queue := make([]Node, len(direct))
	copy(queue, direct)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if visited[cur.ID] {
			return nil, errs.Cyclef("subtree of %s loops at %s", nodeID, cur.ID)
		}
		visited[cur.ID] = true
		ordered = append(ordered, cur.ID)
		children, err := s.Children(ctx, &cur.ID)
		if err != nil {
			return nil, err
		}
		queue = append(queue, children...)
	}
	return ordered, nil
}
