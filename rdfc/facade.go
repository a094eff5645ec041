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

// CanonicalizedDataset is the result of running RDFC-1.0 over a
// dataset: the original dataset, plus the canonical label every blank
// node it contains was issued.
type CanonicalizedDataset struct {
	InputDataset      *Dataset
	IssuedIdentifiers map[*BlankNode]string
}

// ToCanonicalizedDataset runs RDFC-1.0 over ds and returns the
// resulting CanonicalizedDataset. inputLabels, if non-nil, supplies
// the label each blank node should be known by while hashing
// (spec.md §4.4 step 1); a nil map lets the driver mint its own. opts
// may be nil to use NewOptions' defaults.
func ToCanonicalizedDataset(ds *Dataset, inputLabels map[*BlankNode]string, opts *Options) (*CanonicalizedDataset, error) {
	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	st := buildState(ds, inputLabels, opts)
	issued, err := st.canonicalize()
	if err != nil {
		return nil, err
	}
	return &CanonicalizedDataset{InputDataset: ds, IssuedIdentifiers: issued}, nil
}

// ToCanonicalizedDatasetFromNQuads parses input as N-Quads, using the
// label each blank node is spelled with in the text as its input
// label, then canonicalizes the result.
func ToCanonicalizedDatasetFromNQuads(input string, opts *Options) (*CanonicalizedDataset, error) {
	ds, labels, err := Decode(input)
	if err != nil {
		return nil, err
	}
	return ToCanonicalizedDataset(ds, labels, opts)
}

// ToNQuads renders a CanonicalizedDataset as canonical N-Quads text,
// using its issued canonical labels rather than generating fresh
// ones.
func ToNQuads(cd *CanonicalizedDataset) string {
	return EncodeCanonical(cd.InputDataset, cd.IssuedIdentifiers)
}

// Canonicalize runs RDFC-1.0 over ds and renders the result directly
// as canonical N-Quads text.
func Canonicalize(ds *Dataset, opts *Options) (string, error) {
	cd, err := ToCanonicalizedDataset(ds, nil, opts)
	if err != nil {
		return "", err
	}
	return ToNQuads(cd), nil
}

// CanonicalizeNQuads parses input as N-Quads and returns its canonical
// N-Quads serialization, using the label each blank node is spelled
// with in the text as its input label.
func CanonicalizeNQuads(input string, opts *Options) (string, error) {
	cd, err := ToCanonicalizedDatasetFromNQuads(input, opts)
	if err != nil {
		return "", err
	}
	return ToNQuads(cd), nil
}

// CanonicalizeGraph runs RDFC-1.0 over a single graph (a Dataset whose
// quads all carry DefaultGraph) and renders the result as canonical
// N-Quads text.
func CanonicalizeGraph(g Graph, opts *Options) (string, error) {
	return Canonicalize(g.asDataset(), opts)
}

// IsIsomorphic reports whether a and b canonicalize to the same
// N-Quads serialization — the standard way to test RDF dataset
// equivalence up to blank node relabeling (spec.md §1).
func IsIsomorphic(a, b *Dataset, opts *Options) (bool, error) {
	canonA, err := Canonicalize(a, opts)
	if err != nil {
		return false, err
	}
	canonB, err := Canonicalize(b, opts)
	if err != nil {
		return false, err
	}
	return canonA == canonB, nil
}

// IsIsomorphicGraphs reports whether a and b canonicalize to the same
// N-Quads serialization when each is treated as a single graph.
func IsIsomorphicGraphs(a, b Graph, opts *Options) (bool, error) {
	return IsIsomorphic(a.asDataset(), b.asDataset(), opts)
}
