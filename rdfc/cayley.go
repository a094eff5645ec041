// Copyright 2024 The rdfc Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rdfc

import "github.com/cayleygraph/quad"

// ToCayleyQuads converts a Dataset to a slice of github.com/cayleygraph/quad
// quads, suitable for loading into a Cayley-backed quad store.
// Canonicalization never runs over these — Cayley's own BNode is
// string-identified, so a Dataset must be canonicalized with this
// package's *BlankNode handles first, and the canonical labels used
// here, or two differently-labeled copies of the same graph will
// round-trip to different Cayley quads.
func ToCayleyQuads(ds *Dataset, labels map[*BlankNode]string) []quad.Quad {
	out := make([]quad.Quad, 0, ds.Len())
	for _, q := range ds.Quads() {
		out = append(out, quad.Quad{
			Subject:   toCayleyValue(q.Subject, labels),
			Predicate: quad.IRI(q.Predicate),
			Object:    toCayleyValue(q.Object, labels),
			Label:     toCayleyLabel(q.Graph, labels),
		})
	}
	return out
}

func toCayleyValue(t Term, labels map[*BlankNode]string) quad.Value {
	switch v := t.(type) {
	case IRI:
		return quad.IRI(v)
	case *BlankNode:
		return quad.BNode(blankNodeToken(v, labels))
	case Literal:
		if v.Datatype == RDFLangString && v.Language != "" {
			return quad.LangString{Value: quad.String(v.Lexical), Lang: v.Language}
		}
		if v.Datatype != "" && v.Datatype != XSDString {
			return quad.TypedString{Value: quad.String(v.Lexical), Type: quad.IRI(v.Datatype)}
		}
		return quad.String(v.Lexical)
	default:
		return nil
	}
}

func toCayleyLabel(t Term, labels map[*BlankNode]string) quad.Value {
	if IsDefaultGraph(t) {
		return nil
	}
	return toCayleyValue(t, labels)
}

func blankNodeToken(b *BlankNode, labels map[*BlankNode]string) string {
	if labels != nil {
		if label, ok := labels[b]; ok {
			return label
		}
	}
	return b.OriginLabel
}

// FromCayleyQuads converts Cayley quads back into a Dataset. Every
// distinct quad.BNode value becomes a distinct *BlankNode handle (two
// occurrences of the same Cayley blank node string resolve to the
// same handle); graph is used as the graph name for quads whose Label
// is nil, or ignored if a quad carries its own Label.
func FromCayleyQuads(quads []quad.Quad, graph Term) (*Dataset, error) {
	if graph == nil {
		graph = DefaultGraph
	}
	ds := NewDataset()
	handles := make(map[string]*BlankNode)

	handleFor := func(label string) *BlankNode {
		if h, ok := handles[label]; ok {
			return h
		}
		h := NewBlankNode(label)
		handles[label] = h
		return h
	}

	fromCayleyValue := func(v quad.Value) (Term, error) {
		switch val := v.(type) {
		case quad.IRI:
			return IRI(val), nil
		case quad.BNode:
			return handleFor(string(val)), nil
		case quad.String:
			return NewLiteral(string(val)), nil
		case quad.TypedString:
			return NewTypedLiteral(string(val.Value), IRI(val.Type)), nil
		case quad.LangString:
			return NewLangLiteral(string(val.Value), val.Lang), nil
		default:
			return nil, NewError(ErrMalformedInput, "unsupported cayley quad value type", nil)
		}
	}

	for _, q := range quads {
		subject, err := fromCayleyValue(q.Subject)
		if err != nil {
			return nil, err
		}
		object, err := fromCayleyValue(q.Object)
		if err != nil {
			return nil, err
		}
		predicate, ok := q.Predicate.(quad.IRI)
		if !ok {
			return nil, NewError(ErrMalformedInput, "cayley quad predicate must be an IRI", nil)
		}

		quadGraph := graph
		if q.Label != nil {
			quadGraph, err = fromCayleyValue(q.Label)
			if err != nil {
				return nil, err
			}
		}

		ds.Add(NewQuad(subject, IRI(predicate), object, quadGraph))
	}
	return ds, nil
}
