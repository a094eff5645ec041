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

import "strconv"

// Entry is one (input label, issued label) pair, in the order it was
// issued.
type Entry struct {
	InputLabel  string
	IssuedLabel string
}

// IdentifierIssuer mints stable, prefix-tagged labels for input blank
// node identifiers (spec.md §4.1). It is cloned on every exploratory
// branch of N-degree hashing (hasher.go) and committed only along the
// winning branch.
type IdentifierIssuer struct {
	prefix  string
	counter int
	issued  map[string]string
	order   []string
}

// NewIdentifierIssuer creates an issuer that mints labels of the form
// prefix+"0", prefix+"1", ...
func NewIdentifierIssuer(prefix string) *IdentifierIssuer {
	return &IdentifierIssuer{
		prefix: prefix,
		issued: make(map[string]string),
	}
}

// Issue returns the issued label for inputLabel, minting and
// recording a fresh one if none exists yet. Idempotent: issuing an
// already-present input label returns the existing issued label.
func (ii *IdentifierIssuer) Issue(inputLabel string) string {
	if existing, ok := ii.issued[inputLabel]; ok {
		return existing
	}
	issued := ii.prefix + strconv.Itoa(ii.counter)
	ii.counter++
	ii.issued[inputLabel] = issued
	ii.order = append(ii.order, inputLabel)
	return issued
}

// Has returns true if inputLabel has already been assigned an issued
// label.
func (ii *IdentifierIssuer) Has(inputLabel string) bool {
	_, ok := ii.issued[inputLabel]
	return ok
}

// Get returns the issued label for inputLabel, and whether one exists.
func (ii *IdentifierIssuer) Get(inputLabel string) (string, bool) {
	v, ok := ii.issued[inputLabel]
	return v, ok
}

// Clone deep-copies this issuer: the clone has an independent counter
// and map, but the same issuance order as the original at the moment
// of cloning.
func (ii *IdentifierIssuer) Clone() *IdentifierIssuer {
	clone := &IdentifierIssuer{
		prefix:  ii.prefix,
		counter: ii.counter,
		issued:  make(map[string]string, len(ii.issued)),
		order:   make([]string, len(ii.order)),
	}
	copy(clone.order, ii.order)
	for k, v := range ii.issued {
		clone.issued[k] = v
	}
	return clone
}

// EntriesInIssueOrder returns every (input label, issued label) pair
// in the order labels were issued.
func (ii *IdentifierIssuer) EntriesInIssueOrder() []Entry {
	entries := make([]Entry, len(ii.order))
	for i, label := range ii.order {
		entries[i] = Entry{InputLabel: label, IssuedLabel: ii.issued[label]}
	}
	return entries
}
