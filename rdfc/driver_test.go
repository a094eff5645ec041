package rdfc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeNoBlankNodes(t *testing.T) {
	ds := NewDataset()
	ds.Add(NewQuad(IRI("http://ex/a"), IRI("http://ex/p"), NewLiteral("v"), DefaultGraph))

	cd, err := ToCanonicalizedDataset(ds, nil, nil)
	assert.NoError(t, err)
	assert.Empty(t, cd.IssuedIdentifiers)
	assert.Equal(t, "<http://ex/a> <http://ex/p> \"v\" .\n", ToNQuads(cd))
}

func TestCanonicalizeSingleBlankNode(t *testing.T) {
	x := NewBlankNode("x")
	ds := NewDataset()
	ds.Add(NewQuad(x, IRI("http://ex/name"), NewLiteral("Alice"), DefaultGraph))

	cd, err := ToCanonicalizedDataset(ds, nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, map[*BlankNode]string{x: "c14n0"}, cd.IssuedIdentifiers)
	assert.Equal(t, "_:c14n0 <http://ex/name> \"Alice\" .\n", ToNQuads(cd))
}

func twoBlankNodesDataset() (ds *Dataset, a, b *BlankNode) {
	a = NewBlankNode("a")
	b = NewBlankNode("b")
	ds = NewDataset()
	ds.Add(NewQuad(a, IRI("http://ex/name"), NewLiteral("Alice"), DefaultGraph))
	ds.Add(NewQuad(a, IRI("http://ex/knows"), b, DefaultGraph))
	ds.Add(NewQuad(b, IRI("http://ex/name"), NewLiteral("Bob"), DefaultGraph))
	return ds, a, b
}

func TestCanonicalizeTwoBlankNodesUniqueFirstDegreeHashes(t *testing.T) {
	ds, a, b := twoBlankNodesDataset()

	cd, err := ToCanonicalizedDataset(ds, nil, nil)
	assert.NoError(t, err)
	assert.Len(t, cd.IssuedIdentifiers, 2)
	assert.NotEqual(t, cd.IssuedIdentifiers[a], cd.IssuedIdentifiers[b])

	canonical := ToNQuads(cd)

	// Relabeling the input blank nodes must not change the output
	// (input-label insensitivity).
	ds2, a2, b2 := twoBlankNodesDataset()
	cd2, err := ToCanonicalizedDataset(ds2, map[*BlankNode]string{a2: "zzz", b2: "qqq"}, nil)
	assert.NoError(t, err)
	assert.Equal(t, canonical, ToNQuads(cd2))
}

func TestCanonicalizeSymmetricPairRequiresNDegree(t *testing.T) {
	buildDataset := func() (*Dataset, *BlankNode, *BlankNode) {
		a := NewBlankNode("a")
		b := NewBlankNode("b")
		ds := NewDataset()
		ds.Add(NewQuad(a, IRI("http://ex/p"), b, DefaultGraph))
		ds.Add(NewQuad(b, IRI("http://ex/p"), a, DefaultGraph))
		return ds, a, b
	}

	ds1, _, _ := buildDataset()
	out1, err := Canonicalize(ds1, nil)
	assert.NoError(t, err)

	ds2, _, _ := buildDataset()
	out2, err := Canonicalize(ds2, nil)
	assert.NoError(t, err)

	assert.Equal(t, out1, out2, "running twice with fresh blank node identities must yield the same output")
	assert.Contains(t, out1, "c14n0")
	assert.Contains(t, out1, "c14n1")
}

func TestCanonicalizeNamedGraphEquivalentForms(t *testing.T) {
	g := NewBlankNode("g")
	s := NewBlankNode("s")

	dsA := NewDataset()
	dsA.Add(NewQuad(s, IRI("http://ex/p"), NewLiteral("v"), g))

	outA, err := Canonicalize(dsA, nil)
	assert.NoError(t, err)

	assert.Contains(t, outA, "c14n0")
	assert.Contains(t, outA, "c14n1")

	// The same quad written as N-Quads text must canonicalize identically.
	outB, err := CanonicalizeNQuads("_:s <http://ex/p> \"v\" _:g .\n", nil)
	assert.NoError(t, err)
	assert.Equal(t, outA, outB)
}

func TestCanonicalizeDedupesDuplicateQuads(t *testing.T) {
	a := NewBlankNode("a")
	q := NewQuad(a, IRI("http://ex/p"), NewLiteral("v"), DefaultGraph)

	ds1 := NewDataset()
	ds1.Add(q)

	ds2 := NewDataset()
	ds2.Add(q)
	ds2.Add(NewQuad(a, IRI("http://ex/p"), NewLiteral("v"), DefaultGraph))
	ds2.Add(q)

	out1, err := Canonicalize(ds1, nil)
	assert.NoError(t, err)
	out2, err := Canonicalize(ds2, nil)
	assert.NoError(t, err)
	assert.Equal(t, out1, out2)
}

func TestIsIsomorphic(t *testing.T) {
	ds1, _, _ := twoBlankNodesDataset()
	ds2, _, _ := twoBlankNodesDataset()

	ok, err := IsIsomorphic(ds1, ds2, nil)
	assert.NoError(t, err)
	assert.True(t, ok)

	ds3 := NewDataset()
	ds3.Add(NewQuad(IRI("http://ex/a"), IRI("http://ex/p"), NewLiteral("v"), DefaultGraph))

	ok, err = IsIsomorphic(ds1, ds3, nil)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestHashAgilityStableOnUniqueFirstDegreeHashes(t *testing.T) {
	ds, _, _ := twoBlankNodesDataset()
	out256, err := Canonicalize(ds, &Options{HashAlgorithm: SHA256})
	assert.NoError(t, err)

	ds2, _, _ := twoBlankNodesDataset()
	out384, err := Canonicalize(ds2, &Options{HashAlgorithm: SHA384})
	assert.NoError(t, err)

	// Same labeling decision, different hash bytes embedded nowhere in
	// the N-Quads output itself, so the two canonical forms match.
	assert.Equal(t, out256, out384)
}

func TestCanonicalizeGraphAndIsIsomorphicGraphs(t *testing.T) {
	a := NewBlankNode("a")
	g1 := Graph{{Subject: a, Predicate: IRI("http://ex/p"), Object: NewLiteral("v")}}

	out, err := CanonicalizeGraph(g1, nil)
	assert.NoError(t, err)
	assert.Equal(t, "_:c14n0 <http://ex/p> \"v\" .\n", out)

	b := NewBlankNode("b")
	g2 := Graph{{Subject: b, Predicate: IRI("http://ex/p"), Object: NewLiteral("v")}}
	ok, err := IsIsomorphicGraphs(g1, g2, nil)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestToCanonicalizedDatasetFromNQuads(t *testing.T) {
	input := "_:a <http://ex/name> \"Alice\" .\n_:a <http://ex/knows> _:b .\n_:b <http://ex/name> \"Bob\" .\n"
	cd, err := ToCanonicalizedDatasetFromNQuads(input, nil)
	assert.NoError(t, err)
	assert.Len(t, cd.IssuedIdentifiers, 2)

	roundTripped, err := CanonicalizeNQuads(input, nil)
	assert.NoError(t, err)
	assert.Equal(t, ToNQuads(cd), roundTripped)
}

func TestIdempotence(t *testing.T) {
	ds, _, _ := twoBlankNodesDataset()
	once, err := Canonicalize(ds, nil)
	assert.NoError(t, err)

	twice, err := CanonicalizeNQuads(once, nil)
	assert.NoError(t, err)

	assert.Equal(t, once, twice)
}
