// Package redact provides reversible tokenization of personally identifying
// substrings so resume text can cross the external text-generation boundary
// without leaking contact details.
package redact

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Kind identifies a category of detected PII
type Kind string

// Detected PII kinds; each gets its own sequential token counter
const (
	KindEmail   Kind = "EMAIL"
	KindPhone   Kind = "PHONE"
	KindURL     Kind = "URL"
	KindAddress Kind = "ADDRESS"
)

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

	// Phone numbers must have recognizable delimiters between digit groups.
	// A bare 10-digit run is deliberately not matched so IDs and years pass through.
	phonePattern = regexp.MustCompile(`(?:\+?\d{1,2}[\s.\-])?\(?\d{3}\)?[\s.\-]\d{3}[\s.\-]\d{4}`)

	urlPattern = regexp.MustCompile(`(?:https?://)?(?:www\.)?(?:linkedin\.com/in/|github\.com/|twitter\.com/|x\.com/)[A-Za-z0-9_\-./]+`)

	addressPattern = regexp.MustCompile(`\d{1,5}\s+(?:[A-Z][a-z]+\s+){1,3}(?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd|Drive|Dr|Lane|Ln|Court|Ct|Way|Place|Pl)\b\.?`)
)

// detectors are applied in a fixed order; when spans overlap the earlier,
// longer match wins. Email before URL keeps user@github.com-style addresses whole.
var detectors = []struct {
	kind    Kind
	pattern *regexp.Regexp
}{
	{KindEmail, emailPattern},
	{KindPhone, phonePattern},
	{KindURL, urlPattern},
	{KindAddress, addressPattern},
}

// TokenMap is the request-scoped reverse mapping from token to original value.
// It is a plain value object passed alongside redacted text so concurrent
// requests can never cross-contaminate mappings.
type TokenMap struct {
	tokens map[string]string // token -> original
	byText map[string]string // original -> token, for reuse
	counts map[Kind]int
}

// NewTokenMap creates an empty token map
func NewTokenMap() *TokenMap {
	return &TokenMap{
		tokens: make(map[string]string),
		byText: make(map[string]string),
		counts: make(map[Kind]int),
	}
}

// Len returns the number of distinct tokens issued
func (tm *TokenMap) Len() int {
	return len(tm.tokens)
}

// Original returns the original value for a token, if any
func (tm *TokenMap) Original(token string) (string, bool) {
	original, ok := tm.tokens[token]
	return original, ok
}

// token returns the token for an original value, issuing a new sequential
// per-kind token on first sight and reusing it afterwards.
func (tm *TokenMap) token(kind Kind, original string) string {
	if existing, ok := tm.byText[original]; ok {
		return existing
	}
	tm.counts[kind]++
	token := fmt.Sprintf("[%s_%d]", kind, tm.counts[kind])
	tm.tokens[token] = original
	tm.byText[original] = token
	return token
}

type span struct {
	start int
	end   int
	kind  Kind
}

// Redact replaces detected PII substrings with tokens in a single left-to-right
// pass and returns the redacted text plus the mapping needed to restore it.
// Company names, titles, skills, and achievement prose are never touched.
func Redact(text string) (string, *TokenMap) {
	tm := NewTokenMap()
	return tm.Redact(text), tm
}

// Redact tokenizes one more text into the same map, so every piece of text
// that crosses the boundary for a request shares one set of token names and
// one reverse mapping. Identical originals reuse their token across texts.
func (tm *TokenMap) Redact(text string) string {
	if text == "" {
		return text
	}

	var spans []span
	for _, d := range detectors {
		for _, loc := range d.pattern.FindAllStringIndex(text, -1) {
			spans = append(spans, span{start: loc[0], end: loc[1], kind: d.kind})
		}
	}
	if len(spans) == 0 {
		return text
	}

	// Left-to-right; on ties the longer match wins so emails beat embedded URLs
	sort.SliceStable(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}
		return spans[i].end > spans[j].end
	})

	var sb strings.Builder
	last := 0
	for _, s := range spans {
		if s.start < last {
			continue // overlaps a span already consumed
		}
		sb.WriteString(text[last:s.start])
		sb.WriteString(tm.token(s.kind, text[s.start:s.end]))
		last = s.end
	}
	sb.WriteString(text[last:])

	return sb.String()
}

// Restore replaces every token occurrence in text with its original value,
// including tokens the external call echoed back multiple times.
func Restore(text string, tm *TokenMap) string {
	if tm == nil || tm.Len() == 0 {
		return text
	}
	for token, original := range tm.tokens {
		text = strings.ReplaceAll(text, token, original)
	}
	return text
}
