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

// Quad is a subject-predicate-object-graph tuple. Predicate is always
// an IRI. Subject and Object may be any term except DefaultGraph.
// Graph is DefaultGraph for triples in the default graph, or an IRI /
// *BlankNode naming the graph.
type Quad struct {
	Subject   Term
	Predicate IRI
	Object    Term
	Graph     Term
}

// NewQuad creates a new Quad. A nil graph is treated as DefaultGraph.
func NewQuad(subject Term, predicate IRI, object Term, graph Term) *Quad {
	if graph == nil {
		graph = DefaultGraph
	}
	return &Quad{Subject: subject, Predicate: predicate, Object: object, Graph: graph}
}

// Equal returns true if this quad is equal to the given quad.
func (q *Quad) Equal(o *Quad) bool {
	if q == nil || o == nil {
		return q == o
	}
	return q.Subject.Equal(o.Subject) &&
		q.Predicate.Equal(o.Predicate) &&
		q.Object.Equal(o.Object) &&
		q.Graph.Equal(o.Graph)
}

// terms returns the quad's subject, object and graph components, in
// that order — the three positions in which a blank node may occur.
// The predicate is never a blank node and is excluded, matching
// spec.md §9's Design Notes.
func (q *Quad) terms() [3]Term {
	return [3]Term{q.Subject, q.Object, q.Graph}
}

// Dataset is an unordered set of quads.
type Dataset struct {
	quads []*Quad
}

// NewDataset creates an empty Dataset.
func NewDataset() *Dataset {
	return &Dataset{}
}

// Add inserts a quad, collapsing duplicates (set semantics per
// spec.md §3).
func (ds *Dataset) Add(q *Quad) {
	for _, existing := range ds.quads {
		if existing.Equal(q) {
			return
		}
	}
	ds.quads = append(ds.quads, q)
}

// Quads returns the dataset's quads in insertion order (after
// deduplication). The returned slice must not be mutated by the
// caller.
func (ds *Dataset) Quads() []*Quad {
	return ds.quads
}

// Len returns the number of distinct quads in the dataset.
func (ds *Dataset) Len() int {
	return len(ds.quads)
}

// Triple is a subject-predicate-object tuple belonging to a single
// graph with no graph name of its own — the unit CanonicalizeGraph
// operates on.
type Triple struct {
	Subject   Term
	Predicate IRI
	Object    Term
}

// Graph is an unordered set of triples, all implicitly in the same
// (unnamed, from the caller's perspective) graph.
type Graph []Triple

// asDataset lifts a Graph into a Dataset whose quads all carry
// DefaultGraph as their graph component, so the driver can treat graph
// and dataset canonicalization uniformly.
func (g Graph) asDataset() *Dataset {
	ds := NewDataset()
	for _, t := range g {
		ds.Add(NewQuad(t.Subject, t.Predicate, t.Object, DefaultGraph))
	}
	return ds
}
