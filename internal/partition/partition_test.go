package partition

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/fontmerge/internal/types"
)

func TestPartition_FirstMatchWins(t *testing.T) {
	targets := types.NewCodeSet(0x41, 0x42, 0x43, 0x44)
	order := []types.FontTag{"A", "B"}
	coverage := map[types.FontTag]types.CodeSet{
		"A": types.NewCodeSet(0x41, 0x42),
		"B": types.NewCodeSet(0x42, 0x43),
	}

	assigned, unassigned := Partition(targets, order, coverage)

	// 0x42 is covered by both; A is earlier in the order and owns it.
	assert.ElementsMatch(t, []rune{0x41, 0x42}, assigned["A"].Sorted())
	assert.ElementsMatch(t, []rune{0x43}, assigned["B"].Sorted())
	assert.Equal(t, 1, unassigned)
}

func TestPartition_OrderReversalFlipsOwnership(t *testing.T) {
	targets := types.NewCodeSet(0x42)
	coverage := map[types.FontTag]types.CodeSet{
		"A": types.NewCodeSet(0x42),
		"B": types.NewCodeSet(0x42),
	}

	assigned, _ := Partition(targets, []types.FontTag{"A", "B"}, coverage)
	assert.True(t, assigned["A"].Has(0x42))
	assert.False(t, assigned["B"].Has(0x42))

	assigned, _ = Partition(targets, []types.FontTag{"B", "A"}, coverage)
	assert.True(t, assigned["B"].Has(0x42))
	assert.False(t, assigned["A"].Has(0x42))
}

func TestPartition_EmptyOrder(t *testing.T) {
	targets := types.NewCodeSet(0x41, 0x42)

	assigned, unassigned := Partition(targets, nil, nil)
	assert.Empty(t, assigned)
	assert.Equal(t, 2, unassigned)
}

func TestPartition_FontWithNoOwnedCodepoints(t *testing.T) {
	targets := types.NewCodeSet(0x41)
	order := []types.FontTag{"A", "B"}
	coverage := map[types.FontTag]types.CodeSet{
		"A": types.NewCodeSet(0x41),
		"B": types.NewCodeSet(0x41), // fully shadowed by A
	}

	assigned, unassigned := Partition(targets, order, coverage)
	assert.Equal(t, 0, unassigned)
	assert.Equal(t, 1, assigned["A"].Len())
	// B still appears in the assignment, with an empty set the orchestrator
	// must skip.
	require.Contains(t, assigned, types.FontTag("B"))
	assert.Equal(t, 0, assigned["B"].Len())
}

// TestPartition_Invariant exercises the partition invariant on randomized
// inputs: per-font assignments are pairwise disjoint and their union plus
// the unassigned codepoints equals the target set.
func TestPartition_Invariant(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 50; trial++ {
		targets := make(types.CodeSet)
		for i := 0; i < 200; i++ {
			targets.Add(rune(0x20 + rng.Intn(0x3000)))
		}

		order := []types.FontTag{"f0", "f1", "f2", "f3"}
		coverage := make(map[types.FontTag]types.CodeSet, len(order))
		for _, tag := range order {
			cov := make(types.CodeSet)
			for i := 0; i < 150; i++ {
				cov.Add(rune(0x20 + rng.Intn(0x3000)))
			}
			coverage[tag] = cov
		}

		assigned, unassigned := Partition(targets, order, coverage)

		union := make(types.CodeSet)
		total := 0
		for _, tag := range order {
			for _, cp := range assigned[tag].Sorted() {
				require.False(t, union.Has(cp), "codepoint %#x assigned twice", cp)
				union.Add(cp)
				require.True(t, targets.Has(cp), "codepoint %#x not in target set", cp)
			}
			total += assigned[tag].Len()
		}
		require.Equal(t, targets.Len(), total+unassigned)

		// Every assignment went to the first covering font.
		for _, tag := range order {
			for _, cp := range assigned[tag].Sorted() {
				for _, earlier := range order {
					if earlier == tag {
						break
					}
					require.False(t, coverage[earlier].Has(cp),
						"codepoint %#x owned by %s but %s is earlier and covers it", cp, tag, earlier)
				}
			}
		}
	}
}
