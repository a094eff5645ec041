package rdfc

import (
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/assert"
)

func TestToCayleyQuadsRoundTrip(t *testing.T) {
	b := NewBlankNode("b")
	ds := NewDataset()
	ds.Add(NewQuad(IRI("http://ex/s"), IRI("http://ex/p"), b, DefaultGraph))
	ds.Add(NewQuad(b, IRI("http://ex/name"), NewLangLiteral("Bob", "en"), IRI("http://ex/g")))

	labels := map[*BlankNode]string{b: "c14n0"}
	cq := ToCayleyQuads(ds, labels)
	assert.Len(t, cq, 2)

	back, err := FromCayleyQuads(cq, DefaultGraph)
	assert.NoError(t, err)
	assert.Equal(t, 2, back.Len())

	ok, err := IsIsomorphic(ds, back, nil)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestToCayleyQuadsEncodesLiteralVariants(t *testing.T) {
	ds := NewDataset()
	ds.Add(NewQuad(IRI("http://ex/s"), IRI("http://ex/p"), NewLiteral("plain"), DefaultGraph))
	ds.Add(NewQuad(IRI("http://ex/s"), IRI("http://ex/p2"),
		NewTypedLiteral("42", IRI("http://www.w3.org/2001/XMLSchema#integer")), DefaultGraph))

	cq := ToCayleyQuads(ds, nil)
	assert.Len(t, cq, 2)

	var sawPlain, sawTyped bool
	for _, q := range cq {
		switch v := q.Object.(type) {
		case quad.String:
			assert.Equal(t, quad.String("plain"), v)
			sawPlain = true
		case quad.TypedString:
			assert.Equal(t, quad.String("42"), v.Value)
			assert.Equal(t, quad.IRI("http://www.w3.org/2001/XMLSchema#integer"), v.Type)
			sawTyped = true
		}
	}
	assert.True(t, sawPlain)
	assert.True(t, sawTyped)
}

func TestFromCayleyQuadsRejectsNonIRIPredicate(t *testing.T) {
	cq := []quad.Quad{{
		Subject:   quad.IRI("http://ex/s"),
		Predicate: quad.String("not an iri"),
		Object:    quad.IRI("http://ex/o"),
	}}
	_, err := FromCayleyQuads(cq, DefaultGraph)
	assert.Error(t, err)
}
