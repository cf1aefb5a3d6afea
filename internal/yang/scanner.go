// SPDX-License-Identifier: Apache-2.0

// Package yang recovers list-to-primary-key metadata from YANG schema text.
// It is deliberately not a YANG parser: declarations are found by a shallow
// scan over the raw text, which is enough to pull table metadata out of the
// flat list definitions that make up the bulk of real schema files.
package yang

import "strings"

const (
	listKeyword = "list"
	keyKeyword  = "key"
)

// Declaration is one list-with-key occurrence, in document order.
type Declaration struct {
	Name string
	Key  Key
}

// ScanDeclarations walks text as a flat character stream and returns every
// list declaration whose body yields a key clause, in document order.
//
// The scan has no notion of brace depth. After a list's name it accepts any
// run of non-brace characters up to the next open brace, then looks for the
// first `key "..."` clause before another open brace appears. Known
// limitations, kept intentionally:
//
//   - a list whose body opens a nested sub-block before its own key clause
//     loses that key clause, or picks up a key from whatever block the first
//     open brace belongs to;
//   - the "list" and "key" keywords are matched without a preceding word
//     boundary, so e.g. "grouping mylist foo {" scans as a list named "foo".
func ScanDeclarations(text string) []Declaration {
	var decls []Declaration

	pos := 0
	for pos < len(text) {
		i := strings.Index(text[pos:], listKeyword)
		if i < 0 {
			break
		}
		i += pos
		pos = i + len(listKeyword)

		// At least one whitespace, then the entity name.
		ws := skipSpace(text, i+len(listKeyword))
		if ws == i+len(listKeyword) {
			continue
		}
		nameEnd := ws
		for nameEnd < len(text) && isWordByte(text[nameEnd]) {
			nameEnd++
		}
		if nameEnd == ws {
			continue
		}
		name := text[ws:nameEnd]

		// Tolerate anything except an open brace up to the body.
		brace := strings.IndexByte(text[nameEnd:], '{')
		if brace < 0 {
			break
		}
		bodyStart := nameEnd + brace + 1

		clause, end, ok := scanKeyClause(text, bodyStart)
		if !ok {
			// Resume after the name so declarations inside this body
			// are still found.
			pos = nameEnd
			continue
		}
		pos = end

		fields := strings.Fields(clause)
		if len(fields) == 0 {
			// A quoted clause that trims to nothing names no key.
			continue
		}
		if len(fields) == 1 {
			decls = append(decls, Declaration{Name: name, Key: SingleKey(fields[0])})
		} else {
			decls = append(decls, Declaration{Name: name, Key: CompositeKey(fields...)})
		}
	}
	return decls
}

// Extract folds the declarations found in text into a Mapping. A name
// declared more than once keeps its last key.
func Extract(text string) Mapping {
	m := make(Mapping)
	for _, d := range ScanDeclarations(text) {
		m[d.Name] = d.Key
	}
	return m
}

// scanKeyClause looks for `key "<clause>"` starting at start, giving up at
// the first open brace. It returns the raw quoted clause and the index just
// past its closing quote.
func scanKeyClause(text string, start int) (clause string, end int, ok bool) {
	for p := start; p < len(text) && text[p] != '{'; p++ {
		if !strings.HasPrefix(text[p:], keyKeyword) {
			continue
		}
		q := skipSpace(text, p+len(keyKeyword))
		if q == p+len(keyKeyword) || q >= len(text) || text[q] != '"' {
			continue
		}
		closing := strings.IndexByte(text[q+1:], '"')
		if closing <= 0 {
			// Unterminated or empty quoted string.
			continue
		}
		return text[q+1 : q+1+closing], q + 1 + closing + 1, true
	}
	return "", 0, false
}

func skipSpace(text string, p int) int {
	for p < len(text) && isSpaceByte(text[p]) {
		p++
	}
	return p
}

func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func isWordByte(b byte) bool {
	return b == '_' ||
		('a' <= b && b <= 'z') ||
		('A' <= b && b <= 'Z') ||
		('0' <= b && b <= '9')
}
