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
	"bufio"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// renderTerm renders a single term in N-Quads form. labelOf supplies
// the token used for a blank node term: "_:a"/"_:z" during
// first-degree hashing (hasher.go), or the final canonical/original
// label during encoding (facade.go).
//
// Grounded on ld/serialize_nquads.go's toNQuad, generalized to accept
// a caller-supplied blank node labeling strategy instead of always
// reading BlankNode.Attribute.
func renderTerm(t Term, labelOf func(*BlankNode) string) string {
	switch v := t.(type) {
	case IRI:
		return "<" + escape(string(v)) + ">"
	case *BlankNode:
		return labelOf(v)
	case Literal:
		var sb strings.Builder
		sb.WriteByte('"')
		sb.WriteString(escape(v.Lexical))
		sb.WriteByte('"')
		switch {
		case v.Datatype == RDFLangString && v.Language != "":
			sb.WriteByte('@')
			sb.WriteString(v.Language)
		case v.Datatype != "" && v.Datatype != XSDString:
			sb.WriteString("^^<")
			sb.WriteString(escape(string(v.Datatype)))
			sb.WriteByte('>')
		}
		return sb.String()
	default:
		// DefaultGraph never appears in subject/predicate/object
		// position; reaching here is a caller bug.
		return ""
	}
}

// renderQuad renders quad as one line of N-Quads, including the
// trailing " .\n". The graph component is omitted, along with its
// leading space, when quad.Graph is DefaultGraph.
func renderQuad(q *Quad, labelOf func(*BlankNode) string) string {
	var sb strings.Builder
	sb.WriteString(renderTerm(q.Subject, labelOf))
	sb.WriteString(" <")
	sb.WriteString(escape(string(q.Predicate)))
	sb.WriteString("> ")
	sb.WriteString(renderTerm(q.Object, labelOf))
	if !IsDefaultGraph(q.Graph) {
		sb.WriteByte(' ')
		sb.WriteString(renderTerm(q.Graph, labelOf))
	}
	sb.WriteString(" .\n")
	return sb.String()
}

func escape(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	return s
}

func unescape(s string) string {
	s = strings.ReplaceAll(s, "\\n", "\n")
	s = strings.ReplaceAll(s, "\\r", "\r")
	s = strings.ReplaceAll(s, "\\\"", "\"")
	s = strings.ReplaceAll(s, "\\\\", "\\")
	return s
}

// EncodeCanonical renders ds as canonical N-Quads: one quad per line,
// lines sorted in ascending Unicode code-point order, every blank
// node rendered via labels. labels must contain an entry for every
// blank node reachable from ds; EncodeCanonical does not invent
// labels for unmapped blank nodes (spec.md §7: that is an internal
// invariant violation for the facade to catch, not this function's
// job).
func EncodeCanonical(ds *Dataset, labels map[*BlankNode]string) string {
	labelOf := func(b *BlankNode) string {
		return "_:" + labels[b]
	}
	lines := make([]string, 0, ds.Len())
	for _, q := range ds.Quads() {
		lines = append(lines, renderQuad(q, labelOf))
	}
	sort.Strings(lines)
	return strings.Join(lines, "")
}

// N-Quads line grammar, adapted from ld/serialize_nquads.go. Upstream
// spells out the full Unicode PN_CHARS_BASE range from the Turtle
// grammar; this module only needs to round-trip labels it issues
// itself plus whatever a caller passes to Decode, so the grammar
// below restricts blank node labels to the ASCII-safe subset of
// PN_CHARS (letters, digits, underscore, hyphen, dot).
const (
	wso = `[ \t]*`
	ws  = `[ \t]+`
	iri = `(?:<([^>]*)>)`

	pnCharsU = `A-Za-z_`
	pnChars  = pnCharsU + `0-9\-`

	blankNodeLabel = `_:([` + pnCharsU + `0-9](?:[` + pnChars + `.]*[` + pnChars + `])?)`

	bnode    = blankNodeLabel
	plain    = `"([^"\\]*(?:\\.[^"\\]*)*)"`
	datatype = `(?:\^\^` + iri + `)`
	language = `(?:@([a-zA-Z]+(?:-[a-zA-Z0-9]+)*))`
	literal  = `(?:` + plain + `(?:` + datatype + `|` + language + `)?)`

	subject  = `(?:` + iri + `|` + bnode + `)` + ws
	property = iri + ws
	object   = `(?:` + iri + `|` + bnode + `|` + literal + `)` + wso
	graph    = `(?:\.|(?:(?:` + iri + `|` + bnode + `)` + wso + `\.))`
)

var (
	regexEmpty = regexp.MustCompile("^" + wso + "$")
	regexQuad  = regexp.MustCompile("^" + wso + subject + property + object + graph + wso + "$")
)

// Decode parses N-Quads text into a Dataset, plus the map from each
// blank node handle it allocated back to its original textual label
// (spec.md §6: "an N-Quads decoder that returns
// (blank_node_labels: BlankNode→string, dataset: Dataset)"). Two
// occurrences of the same label within the input resolve to the same
// *BlankNode handle.
func Decode(input string) (*Dataset, map[*BlankNode]string, error) {
	ds := NewDataset()
	labels := make(map[*BlankNode]string)
	handles := make(map[string]*BlankNode)

	handleFor := func(label string) *BlankNode {
		if h, ok := handles[label]; ok {
			return h
		}
		h := NewBlankNode(label)
		handles[label] = h
		labels[h] = label
		return h
	}

	scanner := bufio.NewScanner(strings.NewReader(input))
	lineNumber := 0
	for scanner.Scan() {
		line := scanner.Text()
		lineNumber++
		if regexEmpty.MatchString(line) {
			continue
		}
		match := regexQuad.FindStringSubmatch(line)
		if match == nil {
			return nil, nil, NewError(ErrMalformedInput, fmt.Sprintf("invalid N-Quads line %d", lineNumber), nil)
		}

		var subject Term
		if match[1] != "" {
			subject = IRI(unescape(match[1]))
		} else {
			subject = handleFor(unescape(match[2]))
		}

		predicate := IRI(unescape(match[3]))

		var object Term
		switch {
		case match[4] != "":
			object = IRI(unescape(match[4]))
		case match[5] != "":
			object = handleFor(unescape(match[5]))
		default:
			lexical := unescape(match[6])
			switch {
			case match[8] != "":
				object = NewLangLiteral(lexical, unescape(match[8]))
			case match[7] != "":
				object = NewTypedLiteral(lexical, IRI(unescape(match[7])))
			default:
				object = NewLiteral(lexical)
			}
		}

		var graph Term = DefaultGraph
		switch {
		case match[9] != "":
			graph = IRI(unescape(match[9]))
		case match[10] != "":
			graph = handleFor(unescape(match[10]))
		}

		ds.Add(NewQuad(subject, predicate, object, graph))
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, NewError(ErrMalformedInput, "failed reading N-Quads input", err)
	}

	return ds, labels, nil
}
