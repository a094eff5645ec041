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

import "sort"

// hashFirstDegreeQuads computes the first-degree hash for the blank
// node with the given input label (spec.md §4.2): render every quad
// the node occurs in with that node as "_:a" and every other blank
// node as "_:z", sort the resulting lines, and hash the joined
// result. The hash is cached on the entry since it never changes
// across the lifetime of one canonicalization run.
//
// Grounded on ld/api_normalize.go's hashFirstDegreeQuads.
func (st *canonState) hashFirstDegreeQuads(label string) string {
	entry := st.entries[label]
	if entry.hashCached {
		return entry.hash
	}

	labelOf := func(b *BlankNode) string {
		if st.nodeLabels[b] == label {
			return "_:a"
		}
		return "_:z"
	}

	lines := make([]string, 0, len(entry.quads))
	for _, q := range entry.quads {
		lines = append(lines, renderQuad(q, labelOf))
	}
	sort.Strings(lines)

	hash := hashHex(st.opts.HashAlgorithm, []byte(joinLines(lines)))
	entry.hash = hash
	entry.hashCached = true
	return hash
}

func joinLines(lines []string) string {
	total := 0
	for _, l := range lines {
		total += len(l)
	}
	buf := make([]byte, 0, total)
	for _, l := range lines {
		buf = append(buf, l...)
	}
	return string(buf)
}

// hashRelatedBlankNode computes the hash associated with a node
// related to the one currently being N-degree-hashed (spec.md
// §4.3.1). The hashed input is the quad position the related node was
// found in ("s", "o", or "g"), then, unless the position is "g", the
// quad's predicate in angle brackets, then the related node's
// identifier: "_:" plus its canonical label if it has one, else "_:"
// plus its temporary label if the exploratory issuer has one, else its
// first-degree hash.
//
// Grounded on ld/api_normalize.go's hashRelatedBlankNode.
func (st *canonState) hashRelatedBlankNode(relatedLabel string, q *Quad, issuer *IdentifierIssuer, position string) string {
	var id string
	switch {
	case st.canonicalIssuer.Has(relatedLabel):
		issued, _ := st.canonicalIssuer.Get(relatedLabel)
		id = "_:" + issued
	case issuer.Has(relatedLabel):
		issued, _ := issuer.Get(relatedLabel)
		id = "_:" + issued
	default:
		id = st.hashFirstDegreeQuads(relatedLabel)
	}

	var sb = make([]byte, 0, len(position)+1+len(id)+len(q.Predicate)+1)
	sb = append(sb, position...)
	if position != "g" {
		sb = append(sb, '<')
		sb = append(sb, string(q.Predicate)...)
		sb = append(sb, '>')
	}
	sb = append(sb, id...)

	return hashHex(st.opts.HashAlgorithm, sb)
}

// hashNDegreeQuads computes the N-degree hash for the blank node with
// the given input label, exploring every permutation of its related
// blank nodes in ascending-hash order via the Steinhaus-Johnson-Trotter
// permutator, and returns the winning hash together with the issuer
// state (temporary label assignments for every related node visited
// along the winning path) that produced it.
//
// Grounded on ld/api_normalize.go's hashNDegreeQuads and
// createHashToRelated.
func (st *canonState) hashNDegreeQuads(label string, issuer *IdentifierIssuer) (string, *IdentifierIssuer) {
	hashToRelated := st.createHashToRelated(label, issuer)

	relatedHashes := make([]string, 0, len(hashToRelated))
	for hash := range hashToRelated {
		relatedHashes = append(relatedHashes, hash)
	}
	sort.Strings(relatedHashes)

	var dataToHash []byte

	for _, relatedHash := range relatedHashes {
		dataToHash = append(dataToHash, relatedHash...)

		labels := hashToRelated[relatedHash]
		var chosenPath string
		var chosenIssuer *IdentifierIssuer

		perms := permutationsOf(labels)
		permCount := 0
		for _, perm := range perms {
			permCount++
			if permCount == st.opts.PermutationWarnThreshold+1 {
				st.opts.Logger.V(1).Info("n-degree permutation search exceeded warn threshold",
					"label", label, "relatedHash", relatedHash, "bucketSize", len(labels))
			}

			issuerCopy := issuer.Clone()
			var path []byte
			var recursionList []string

			skip := false
			for _, related := range perm {
				switch {
				case st.canonicalIssuer.Has(related):
					issued, _ := st.canonicalIssuer.Get(related)
					path = append(path, "_:"+issued...)
				case issuerCopy.Has(related):
					issued, _ := issuerCopy.Get(related)
					path = append(path, "_:"+issued...)
				default:
					issuerCopy.Issue(related)
					issued, _ := issuerCopy.Get(related)
					path = append(path, "_:"+issued...)
					recursionList = append(recursionList, related)
				}

				if chosenPath != "" && len(path) >= len(chosenPath) && string(path) > chosenPath {
					skip = true
					break
				}
			}
			if skip {
				continue
			}

			for _, related := range recursionList {
				recHash, resultIssuer := st.hashNDegreeQuads(related, issuerCopy)
				issued, _ := issuerCopy.Get(related)
				path = append(path, "_:"+issued...)
				path = append(path, '<')
				path = append(path, recHash...)
				path = append(path, '>')
				issuerCopy = resultIssuer

				if chosenPath != "" && len(path) >= len(chosenPath) && string(path) > chosenPath {
					skip = true
					break
				}
			}
			if skip {
				continue
			}

			if chosenPath == "" || string(path) < chosenPath {
				chosenPath = string(path)
				chosenIssuer = issuerCopy
			}
		}

		dataToHash = append(dataToHash, chosenPath...)
		issuer = chosenIssuer
	}

	return hashHex(st.opts.HashAlgorithm, dataToHash), issuer
}

// createHashToRelated gathers, for the blank node with the given
// label, every other blank node that shares a quad with it, keyed by
// hashRelatedBlankNode's result. A related node appears once per
// distinct (quad, position) occurrence, matching spec.md §4.3's
// component-gathering step.
func (st *canonState) createHashToRelated(label string, issuer *IdentifierIssuer) map[string][]string {
	entry := st.entries[label]
	hashToRelated := make(map[string][]string)

	positions := [3]string{"s", "o", "g"}
	for _, q := range entry.quads {
		for i, term := range q.terms() {
			related, ok := term.(*BlankNode)
			if !ok || related == entry.node {
				continue
			}
			relatedLabel, ok := st.nodeLabels[related]
			if !ok {
				continue
			}
			hash := st.hashRelatedBlankNode(relatedLabel, q, issuer, positions[i])
			hashToRelated[hash] = append(hashToRelated[hash], relatedLabel)
		}
	}

	return hashToRelated
}

// permutationsOf returns every permutation of labels in ascending
// lexical order of the permuted slices, generated via the
// Steinhaus-Johnson-Trotter algorithm (each permutation differs from
// the last by a single adjacent transposition) and then sorted, since
// spec.md §4.3 requires visiting permutations in a stable order but
// does not require they be generated in that order.
//
// Grounded on ld/api_normalize.go's Permutator.
func permutationsOf(labels []string) [][]string {
	p := newPermutator(labels)
	var all [][]string
	for p.hasNext() {
		all = append(all, p.next())
	}
	sort.Slice(all, func(i, j int) bool {
		for k := range all[i] {
			if all[i][k] != all[j][k] {
				return all[i][k] < all[j][k]
			}
		}
		return false
	})
	return all
}

// permutator enumerates every permutation of a slice of strings using
// the Steinhaus-Johnson-Trotter algorithm with Even's speedup: each
// element carries a direction, and on every step the largest mobile
// element (one pointing toward a smaller neighbor) swaps with that
// neighbor.
//
// Grounded on ld/api_normalize.go's Permutator.
type permutator struct {
	elements []string
	done     bool
	started  bool
	left     []bool // true if element i's direction is left
}

func newPermutator(list []string) *permutator {
	elements := make([]string, len(list))
	copy(elements, list)
	left := make([]bool, len(elements))
	for i := range left {
		left[i] = true
	}
	return &permutator{elements: elements, left: left}
}

func (p *permutator) hasNext() bool {
	return !p.done
}

func (p *permutator) next() []string {
	current := make([]string, len(p.elements))
	copy(current, p.elements)

	if !p.started {
		p.started = true
		if len(p.elements) <= 1 {
			p.done = true
		}
		return current
	}

	// Find the largest mobile element: one whose direction points to a
	// smaller adjacent neighbor.
	largestMobile := -1
	for i := range p.elements {
		if p.isMobile(i) {
			if largestMobile == -1 || p.elements[i] > p.elements[largestMobile] {
				largestMobile = i
			}
		}
	}
	if largestMobile == -1 {
		p.done = true
		return current
	}

	// Swap the mobile element with the neighbor it points to.
	dest := largestMobile - 1
	if !p.left[largestMobile] {
		dest = largestMobile + 1
	}
	p.elements[largestMobile], p.elements[dest] = p.elements[dest], p.elements[largestMobile]
	p.left[largestMobile], p.left[dest] = p.left[dest], p.left[largestMobile]

	// Every element larger than the one that just moved reverses
	// direction.
	moved := p.elements[dest]
	for i := range p.elements {
		if p.elements[i] > moved {
			p.left[i] = !p.left[i]
		}
	}

	hasMobile := false
	for i := range p.elements {
		if p.isMobile(i) {
			hasMobile = true
			break
		}
	}

	next := make([]string, len(p.elements))
	copy(next, p.elements)
	if !hasMobile {
		p.done = true
	}
	return next
}

func (p *permutator) isMobile(i int) bool {
	if p.left[i] {
		if i == 0 {
			return false
		}
		return p.elements[i] > p.elements[i-1]
	}
	if i == len(p.elements)-1 {
		return false
	}
	return p.elements[i] > p.elements[i+1]
}
