package rdfc

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashFirstDegreeQuadsIsCachedAndDeterministic(t *testing.T) {
	a := NewBlankNode("a")
	ds := NewDataset()
	ds.Add(NewQuad(a, IRI("http://ex/p"), NewLiteral("v"), DefaultGraph))

	st := buildState(ds, nil, NewOptions())
	label := st.order[0]

	h1 := st.hashFirstDegreeQuads(label)
	h2 := st.hashFirstDegreeQuads(label)
	assert.Equal(t, h1, h2)
	assert.True(t, st.entries[label].hashCached)
}

func TestHashFirstDegreeQuadsDiffersForDifferentShapes(t *testing.T) {
	a := NewBlankNode("a")
	b := NewBlankNode("b")
	ds := NewDataset()
	ds.Add(NewQuad(a, IRI("http://ex/name"), NewLiteral("Alice"), DefaultGraph))
	ds.Add(NewQuad(b, IRI("http://ex/name"), NewLiteral("Bob"), DefaultGraph))

	st := buildState(ds, nil, NewOptions())
	var labelA, labelB string
	for _, label := range st.order {
		if st.entries[label].node == a {
			labelA = label
		} else {
			labelB = label
		}
	}

	assert.NotEqual(t, st.hashFirstDegreeQuads(labelA), st.hashFirstDegreeQuads(labelB))
}

func TestCreateHashToRelatedKeepsOneEntryPerOccurrence(t *testing.T) {
	a := NewBlankNode("a")
	b := NewBlankNode("b")
	ds := NewDataset()
	ds.Add(NewQuad(a, IRI("http://ex/p"), b, IRI("http://ex/g1")))
	ds.Add(NewQuad(a, IRI("http://ex/p"), b, IRI("http://ex/g2")))

	st := buildState(ds, nil, NewOptions())
	labelA, ok := st.nodeLabels[a]
	assert.True(t, ok)
	labelB, ok := st.nodeLabels[b]
	assert.True(t, ok)

	issuer := NewIdentifierIssuer("b")
	hashToRelated := st.createHashToRelated(labelA, issuer)

	assert.Len(t, hashToRelated, 1, "both occurrences of b share the same tag (same position, predicate, id)")
	for _, labels := range hashToRelated {
		assert.Equal(t, []string{labelB, labelB}, labels,
			"a related node occurring in two distinct quads must appear twice in the multiset, not be deduped")
	}
}

func TestPermutatorEnumeratesAllPermutationsOfThree(t *testing.T) {
	perms := permutationsOf([]string{"x", "y", "z"})
	assert.Len(t, perms, 6)

	seen := make(map[string]bool)
	for _, p := range perms {
		seen[p[0]+p[1]+p[2]] = true
	}
	assert.Len(t, seen, 6, "every permutation must be distinct")

	sorted := make([][]string, len(perms))
	copy(sorted, perms)
	sort.Slice(sorted, func(i, j int) bool {
		for k := range sorted[i] {
			if sorted[i][k] != sorted[j][k] {
				return sorted[i][k] < sorted[j][k]
			}
		}
		return false
	})
	assert.Equal(t, sorted, perms, "permutationsOf must already return ascending lexical order")
}

func TestPermutatorHandlesSingleAndEmpty(t *testing.T) {
	assert.Equal(t, [][]string{{"only"}}, permutationsOf([]string{"only"}))
	assert.Equal(t, [][]string{{}}, permutationsOf([]string{}))
}

func TestPermutatorEnumeratesAllPermutationsOfFour(t *testing.T) {
	perms := permutationsOf([]string{"a", "b", "c", "d"})
	assert.Len(t, perms, 24)
	seen := make(map[string]bool)
	for _, p := range perms {
		key := p[0] + p[1] + p[2] + p[3]
		assert.False(t, seen[key], "duplicate permutation %v", p)
		seen[key] = true
	}
}
