// file: internals/helpers/tree/tree_test.go
package tree

import (
	"context"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nunchakuclub_backend/internals/helpers/errs"
)

/* =========================================================
   IN-MEMORY STORE
========================================================= */

type memStore struct {
	nodes map[uuid.UUID]*Node
	seq   map[uuid.UUID]int // insertion order, tiebreak for equal positions
	next  int
}

func newMemStore() *memStore {
	return &memStore{nodes: map[uuid.UUID]*Node{}, seq: map[uuid.UUID]int{}}
}

func (m *memStore) add(parent *uuid.UUID, pos int) uuid.UUID {
	id := uuid.New()
	m.nodes[id] = &Node{ID: id, ParentID: parent, Position: pos}
	m.next++
	m.seq[id] = m.next
	return id
}

func (m *memStore) Node(_ context.Context, id uuid.UUID) (Node, error) {
	n, ok := m.nodes[id]
	if !ok {
		return Node{}, errs.NotFoundf("node %s", id)
	}
	return *n, nil
}

func (m *memStore) Children(_ context.Context, parentID *uuid.UUID) ([]Node, error) {
	var out []Node
	for _, n := range m.nodes {
		switch {
		case parentID == nil && n.ParentID == nil:
			out = append(out, *n)
		case parentID != nil && n.ParentID != nil && *n.ParentID == *parentID:
			out = append(out, *n)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return m.seq[out[i].ID] < m.seq[out[j].ID]
	})
	return out, nil
}

func (m *memStore) SetParent(_ context.Context, id uuid.UUID, parentID *uuid.UUID, position int) error {
	n, ok := m.nodes[id]
	if !ok {
		return errs.NotFoundf("node %s", id)
	}
	n.ParentID = parentID
	n.Position = position
	return nil
}

func (m *memStore) SetPosition(_ context.Context, id uuid.UUID, position int) error {
	n, ok := m.nodes[id]
	if !ok {
		return errs.NotFoundf("node %s", id)
	}
	n.Position = position
	return nil
}

func (m *memStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.nodes[id]; !ok {
		return errs.NotFoundf("node %s", id)
	}
	delete(m.nodes, id)
	return nil
}

/* =========================================================
   ATTACH
========================================================= */

func TestAttachAppendsAtEnd(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()
	root := s.add(nil, 1)
	a := s.add(&root, 1)
	b := s.add(nil, 2)

	require.NoError(t, Attach(ctx, s, b, root, nil))

	got, err := s.Node(ctx, b)
	require.NoError(t, err)
	require.NotNil(t, got.ParentID)
	assert.Equal(t, root, *got.ParentID)
	assert.Equal(t, 2, got.Position, "appended after existing child")

	gotA, _ := s.Node(ctx, a)
	assert.Equal(t, 1, gotA.Position)
}

func TestAttachSelfParentRejected(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()
	a := s.add(nil, 1)

	err := Attach(ctx, s, a, a, nil)
	assert.ErrorIs(t, err, errs.ErrCycle)
}

func TestAttachCycleRejected(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()
	a := s.add(nil, 1)
	b := s.add(&a, 1)
	c := s.add(&b, 1)

	// a -> b -> c; attaching a under c would close the loop
	err := Attach(ctx, s, a, c, nil)
	assert.ErrorIs(t, err, errs.ErrCycle)

	// and the direct two-node case
	err = Attach(ctx, s, a, b, nil)
	assert.ErrorIs(t, err, errs.ErrCycle)
}

func TestAttachMissingNodes(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()
	a := s.add(nil, 1)

	assert.ErrorIs(t, Attach(ctx, s, uuid.New(), a, nil), errs.ErrNotFound)
	assert.ErrorIs(t, Attach(ctx, s, a, uuid.New(), nil), errs.ErrNotFound)
}

func TestMoveToRootAppendsAfterRoots(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()
	r1 := s.add(nil, 1)
	_ = s.add(nil, 2)
	child := s.add(&r1, 1)

	require.NoError(t, MoveToRoot(ctx, s, child))

	got, err := s.Node(ctx, child)
	require.NoError(t, err)
	assert.Nil(t, got.ParentID)
	assert.Equal(t, 3, got.Position)
}

/* =========================================================
   REORDER
========================================================= */

func TestReorderRewritesPositions(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()
	p := s.add(nil, 1)
	a := s.add(&p, 1)
	b := s.add(&p, 2)
	c := s.add(&p, 3)

	require.NoError(t, Reorder(ctx, s, &p, []uuid.UUID{c, a, b}))

	children, err := s.Children(ctx, &p)
	require.NoError(t, err)
	require.Len(t, children, 3)
	assert.Equal(t, c, children[0].ID)
	assert.Equal(t, a, children[1].ID)
	assert.Equal(t, b, children[2].ID)
	for i, ch := range children {
		assert.Equal(t, i+1, ch.Position, "positions are sequential from 1")
	}
}

func TestReorderRejectsOmission(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()
	p := s.add(nil, 1)
	a := s.add(&p, 1)
	_ = s.add(&p, 2)

	err := Reorder(ctx, s, &p, []uuid.UUID{a})
	assert.ErrorIs(t, err, errs.ErrInvalidOrder)
}

func TestReorderRejectsForeignAndDuplicateIDs(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()
	p := s.add(nil, 1)
	a := s.add(&p, 1)
	b := s.add(&p, 2)
	stranger := s.add(nil, 2)

	assert.ErrorIs(t, Reorder(ctx, s, &p, []uuid.UUID{a, stranger}), errs.ErrInvalidOrder)
	assert.ErrorIs(t, Reorder(ctx, s, &p, []uuid.UUID{a, a}), errs.ErrInvalidOrder)
	_ = b
}

func TestReorderRoots(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()
	r1 := s.add(nil, 1)
	r2 := s.add(nil, 2)

	require.NoError(t, Reorder(ctx, s, nil, []uuid.UUID{r2, r1}))

	roots, err := s.Children(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, r2, roots[0].ID)
	assert.Equal(t, r1, roots[1].ID)
}

/* =========================================================
   DETACH
========================================================= */

func TestDetachBlockRefusesWithChildren(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()
	p := s.add(nil, 1)
	_ = s.add(&p, 1)

	err := Detach(ctx, s, p, PolicyBlock, nil)
	assert.ErrorIs(t, err, errs.ErrHasChildren)

	_, err = s.Node(ctx, p)
	assert.NoError(t, err, "node survives a refused delete")
}

func TestDetachBlockDeletesLeaf(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()
	p := s.add(nil, 1)
	leaf := s.add(&p, 1)

	require.NoError(t, Detach(ctx, s, leaf, PolicyBlock, nil))

	_, err := s.Node(ctx, leaf)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestDetachCascadeDeletesSubtree(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()
	root := s.add(nil, 1)
	a := s.add(&root, 1)
	b := s.add(&a, 1)
	c := s.add(&a, 2)
	outside := s.add(nil, 2)

	require.NoError(t, Detach(ctx, s, a, PolicyCascade, nil))

	for _, id := range []uuid.UUID{a, b, c} {
		_, err := s.Node(ctx, id)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	}
	_, err := s.Node(ctx, root)
	assert.NoError(t, err)
	_, err = s.Node(ctx, outside)
	assert.NoError(t, err)
}

type countingStore struct {
	*memStore
	deletes map[uuid.UUID]int
}

func (c *countingStore) Delete(ctx context.Context, id uuid.UUID) error {
	c.deletes[id]++
	return c.memStore.Delete(ctx, id)
}

func TestDetachCascadeDeletesEachNodeOnce(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()
	root := s.add(nil, 1)
	child := s.add(&root, 1)
	grandchild := s.add(&child, 1)

	counted := &countingStore{memStore: s, deletes: map[uuid.UUID]int{}}
	require.NoError(t, Detach(ctx, counted, root, PolicyCascade, nil))

	for _, id := range []uuid.UUID{root, child, grandchild} {
		assert.Equal(t, 1, counted.deletes[id], "node deleted exactly once")
	}
}

func TestDetachReparentFloatsChildrenUp(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()
	root := s.add(nil, 1)
	mid := s.add(&root, 1)
	c1 := s.add(&mid, 1)
	c2 := s.add(&mid, 2)

	require.NoError(t, Detach(ctx, s, mid, PolicyReparent, nil))

	_, err := s.Node(ctx, mid)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	for _, id := range []uuid.UUID{c1, c2} {
		got, err := s.Node(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, got.ParentID)
		assert.Equal(t, root, *got.ParentID)
	}
}

func TestDetachReparentOfRootPromotesChildrenToRoots(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()
	root := s.add(nil, 1)
	c1 := s.add(&root, 1)

	require.NoError(t, Detach(ctx, s, root, PolicyReparent, nil))

	got, err := s.Node(ctx, c1)
	require.NoError(t, err)
	assert.Nil(t, got.ParentID)
}

func TestDetachReparentExplicitTarget(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()
	rootA := s.add(nil, 1)
	rootB := s.add(nil, 2)
	mid := s.add(&rootA, 1)
	c1 := s.add(&mid, 1)

	require.NoError(t, Detach(ctx, s, mid, PolicyReparent, &rootB))

	got, err := s.Node(ctx, c1)
	require.NoError(t, err)
	require.NotNil(t, got.ParentID)
	assert.Equal(t, rootB, *got.ParentID)
}

/* =========================================================
   TRAVERSAL
========================================================= */

func TestAncestorsNearestFirstAndNeverSelf(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()
	a := s.add(nil, 1)
	b := s.add(&a, 1)
	c := s.add(&b, 1)

	var chain []uuid.UUID
	for n, err := range Ancestors(ctx, s, c) {
		require.NoError(t, err)
		chain = append(chain, n.ID)
	}
	assert.Equal(t, []uuid.UUID{b, a}, chain)
	assert.NotContains(t, chain, c)
}

func TestAncestorsDetectsStoredCycle(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()
	a := s.add(nil, 1)
	b := s.add(&a, 1)
	s.nodes[a].ParentID = &b // corrupt the stored data

	var last error
	for _, err := range Ancestors(ctx, s, a) {
		last = err
	}
	assert.ErrorIs(t, last, errs.ErrCycle)
}

func TestDescendantsBreadthFirst(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()
	root := s.add(nil, 1)
	a := s.add(&root, 1)
	b := s.add(&root, 2)
	a1 := s.add(&a, 1)
	b1 := s.add(&b, 1)

	var order []uuid.UUID
	for n, err := range Descendants(ctx, s, root) {
		require.NoError(t, err)
		order = append(order, n.ID)
	}
	assert.Equal(t, []uuid.UUID{a, b, a1, b1}, order)
}

func TestDescendantsLazy(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()
	root := s.add(nil, 1)
	a := s.add(&root, 1)
	_ = s.add(&root, 2)

	// stop after the first element; the iterator must not keep pushing
	var got []uuid.UUID
	for n, err := range Descendants(ctx, s, root) {
		require.NoError(t, err)
		got = append(got, n.ID)
		break
	}
	assert.Equal(t, []uuid.UUID{a}, got)
}

func TestNextPositionSkipsGaps(t *testing.T) {
	assert.Equal(t, 1, nextPosition(nil))
	assert.Equal(t, 8, nextPosition([]Node{{Position: 3}, {Position: 7}}))
}
