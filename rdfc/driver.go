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

import (
	"fmt"
	"sort"
	"strconv"
)

// blankNodeEntry is the per-blank-node state the driver and hasher
// share: its input label, its handle, the quads it occurs in
// (subject, object or graph position), and its cached first-degree
// hash. Grounded on ld/api_normalize.go's blankNodeInfo map, given a
// concrete struct shape instead of map[string]interface{}.
type blankNodeEntry struct {
	label      string
	node       *BlankNode
	quads      []*Quad
	hash       string
	hashCached bool
}

// canonState is the mutable working state of one canonicalization
// invocation (spec.md §3: "all derived structures ... are owned by a
// single canonicalization invocation and discarded at its end").
type canonState struct {
	opts            *Options
	entries         map[string]*blankNodeEntry // input label -> entry
	order           []string                   // input labels, first-seen order
	nodeLabels      map[*BlankNode]string      // node -> its input label
	canonicalIssuer *IdentifierIssuer
}

// buildState constructs canonicalization state from a dataset
// (spec.md §4.4 step 1): deduplicating quads (Dataset.Add already
// guarantees this), building the input-label map (using
// callerLabels where provided, minting fresh "n<k>" labels for any
// other blank node encountered), and the blank-node-to-quads index.
func buildState(ds *Dataset, callerLabels map[*BlankNode]string, opts *Options) *canonState {
	st := &canonState{
		opts:            opts,
		entries:         make(map[string]*blankNodeEntry),
		nodeLabels:      make(map[*BlankNode]string),
		canonicalIssuer: NewIdentifierIssuer(opts.BlankNodePrefix),
	}

	freshCounter := 0

	labelOf := func(b *BlankNode) string {
		if label, ok := st.nodeLabels[b]; ok {
			return label
		}
		var label string
		if callerLabels != nil {
			if l, ok := callerLabels[b]; ok {
				label = l
			}
		}
		if label == "" {
			label = "n" + strconv.Itoa(freshCounter)
			freshCounter++
		}
		st.nodeLabels[b] = label
		return label
	}

	for _, q := range ds.Quads() {
		for _, term := range q.terms() {
			b, ok := term.(*BlankNode)
			if !ok {
				continue
			}
			label := labelOf(b)
			entry, ok := st.entries[label]
			if !ok {
				entry = &blankNodeEntry{label: label, node: b}
				st.entries[label] = entry
				st.order = append(st.order, label)
			}
			entry.quads = append(entry.quads, q)
		}
	}

	return st
}

// canonicalize runs spec.md §4.4 steps 2 through 5 and returns the
// final BlankNode -> canonical label map.
func (st *canonState) canonicalize() (map[*BlankNode]string, error) {
	// Step 2: first-degree hashing, bucketed by hash.
	hashToLabels := make(map[string][]string)
	for _, label := range st.order {
		hash := st.hashFirstDegreeQuads(label)
		hashToLabels[hash] = append(hashToLabels[hash], label)
	}

	sortedHashes := make([]string, 0, len(hashToLabels))
	for hash := range hashToLabels {
		sortedHashes = append(sortedHashes, hash)
	}
	sort.Strings(sortedHashes)

	// Step 3: issue canonical labels for unique buckets, in hash
	// order.
	var collisions []string
	for _, hash := range sortedHashes {
		labels := hashToLabels[hash]
		if len(labels) == 1 {
			st.canonicalIssuer.Issue(labels[0])
		} else {
			collisions = append(collisions, hash)
		}
	}

	// Step 4: resolve collisions, in ascending hash order.
	for _, hash := range collisions {
		type hashPath struct {
			hash   string
			label  string
			issuer *IdentifierIssuer
		}
		var paths []hashPath

		for _, label := range hashToLabels[hash] {
			if st.canonicalIssuer.Has(label) {
				continue
			}
			tempIssuer := NewIdentifierIssuer("b")
			tempIssuer.Issue(label)
			nHash, resultIssuer := st.hashNDegreeQuads(label, tempIssuer)
			paths = append(paths, hashPath{hash: nHash, label: label, issuer: resultIssuer})
		}

		sort.Slice(paths, func(i, j int) bool { return paths[i].hash < paths[j].hash })

		for _, p := range paths {
			if !st.canonicalIssuer.Has(p.label) {
				st.canonicalIssuer.Issue(p.label)
			}
			for _, e := range p.issuer.EntriesInIssueOrder() {
				if !st.canonicalIssuer.Has(e.InputLabel) {
					st.canonicalIssuer.Issue(e.InputLabel)
				}
			}
		}
	}

	// Step 5: result assembly.
	result := make(map[*BlankNode]string, len(st.entries))
	for _, label := range st.order {
		entry := st.entries[label]
		issued, ok := st.canonicalIssuer.Get(label)
		if !ok {
			return nil, NewError(ErrInternalInvariant,
				fmt.Sprintf("blank node with input label %q was never issued a canonical label", label), nil)
		}
		result[entry.node] = issued
	}
	return result, nil
}
