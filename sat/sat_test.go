package sat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ondrejsvarc/bfs-iddfs-benchmark/bfs"
	"github.com/ondrejsvarc/bfs-iddfs-benchmark/iddfs"
	"github.com/ondrejsvarc/bfs-iddfs-benchmark/sat"
)

// TestGenerate_Validation verifies malformed parameters are rejected.
func TestGenerate_Validation(t *testing.T) {
	_, err := sat.Generate(0, 1, 1, 1)
	assert.ErrorIs(t, err, sat.ErrNonPositiveParam)

	_, err = sat.Generate(1, 0, 1, 1)
	assert.ErrorIs(t, err, sat.ErrNonPositiveParam)

	_, err = sat.Generate(1, 1, 0, 1)
	assert.ErrorIs(t, err, sat.ErrNonPositiveParam)

	_, err = sat.Generate(33, 1, 1, 1)
	assert.ErrorIs(t, err, sat.ErrTooManyVariables)
}

// TestGenerate_Deterministic verifies a fixed seed reproduces the formula.
func TestGenerate_Deterministic(t *testing.T) {
	first, err := sat.Generate(5, 4, 3, 7)
	require.NoError(t, err)
	second, err := sat.Generate(5, 4, 3, 7)
	require.NoError(t, err)

	assert.Equal(t, first.Formula().String(), second.Formula().String())
}

// TestFormula_String pins down the rendering format.
func TestFormula_String(t *testing.T) {
	f := &sat.Formula{
		Variables: 3,
		Clauses: []sat.Clause{
			{{Var: 1, Negated: false}, {Var: 2, Negated: true}},
			{{Var: 3, Negated: false}},
		},
	}
	assert.Equal(t, "(1 v ~2) & (3)", f.String())
}

// TestState_ID verifies the 2-bit-per-variable encoding: unset=0, false=1,
// true=2, variable 1 in the most significant position.
func TestState_ID(t *testing.T) {
	f := &sat.Formula{Variables: 1, Clauses: []sat.Clause{{{Var: 1}}}}
	root, err := sat.Root(f)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), root.ID())

	kids := root.Successors()
	require.Len(t, kids, 2)
	assert.Equal(t, uint64(2), kids[0].ID()) // x1 = true, enumerated first
	assert.Equal(t, uint64(1), kids[1].ID()) // x1 = false
}

// TestState_Goal verifies the goal requires a complete, satisfying
// assignment.
func TestState_Goal(t *testing.T) {
	// (x1 v x2) & (~x1): unique solution x1=false, x2=true.
	f := &sat.Formula{
		Variables: 2,
		Clauses: []sat.Clause{
			{{Var: 1}, {Var: 2}},
			{{Var: 1, Negated: true}},
		},
	}
	root, err := sat.Root(f)
	require.NoError(t, err)
	assert.False(t, root.IsGoal())

	res, err := bfs.Sequential(root)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 2, res.Depth)

	goal := res.Goal.(*sat.State)
	assert.Equal(t, map[int]bool{1: false, 2: true}, goal.Assignment())
}

// TestUnsatisfiable_AllSolvers verifies the {x1},{~x1} instance reports no
// goal in every variant once both assignments are exhausted. The IDDFS
// variants need a depth cap: without one, an exhausted finite space keeps
// escalating the limit forever.
func TestUnsatisfiable_AllSolvers(t *testing.T) {
	contradiction := func() *sat.State {
		f := &sat.Formula{
			Variables: 1,
			Clauses: []sat.Clause{
				{{Var: 1}},
				{{Var: 1, Negated: true}},
			},
		}
		root, err := sat.Root(f)
		require.NoError(t, err)
		return root
	}

	seq, err := bfs.Sequential(contradiction())
	require.NoError(t, err)
	assert.False(t, seq.Found)
	assert.Equal(t, 3, seq.Expanded) // root plus both assignments

	par, err := bfs.Parallel(contradiction())
	require.NoError(t, err)
	assert.False(t, par.Found)

	idSeq, err := iddfs.Sequential(contradiction(), iddfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.False(t, idSeq.Found)

	idPar, err := iddfs.Parallel(contradiction(), iddfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.False(t, idPar.Found)
}

// TestRoot_Validation verifies explicit formulas are checked.
func TestRoot_Validation(t *testing.T) {
	_, err := sat.Root(nil)
	assert.ErrorIs(t, err, sat.ErrNonPositiveParam)

	_, err = sat.Root(&sat.Formula{Variables: 1, Clauses: []sat.Clause{{{Var: 2}}}})
	assert.Error(t, err) // literal out of range
}

// TestGenerated_Solvable exercises a random instance end to end; with 4
// variables and a single short clause the space is tiny and satisfiable
// instances are found at depth 4 (a complete assignment).
func TestGenerated_Solvable(t *testing.T) {
	root, err := sat.Generate(4, 2, 2, 11)
	require.NoError(t, err)

	seq, err := bfs.Sequential(root)
	require.NoError(t, err)
	par, err := bfs.Parallel(root)
	require.NoError(t, err)

	assert.Equal(t, seq.Found, par.Found)
	if seq.Found {
		assert.Equal(t, seq.Depth, par.Depth)
		assert.Equal(t, 4, seq.Depth) // goals are complete assignments
	}
}
