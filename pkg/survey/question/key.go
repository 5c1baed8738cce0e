// Package question decomposes response-table column headers into
// question groups and classifies each group into a rendering archetype.
package question

import (
	"sort"
	"strconv"
	"strings"
)

// ColumnKey is a structurally decomposed column header: a base question
// id, up to two numeric sub-indices, and an optional free-text suffix.
// A key with no sub-indices addresses a single-answer question, one
// sub-index a form/list item, two a matrix row/column pair.
type ColumnKey struct {
	Raw       string
	Base      string
	Sub       []string // 0..2 numeric sub-indices, outermost first
	TextField bool     // trailing _TEXT suffix ("other, please specify" fields)
}

// ParseColumnKey decomposes a header string. Parsing is tolerant: a
// header with no recognizable index structure keeps the whole string as
// its base id and carries no sub-indices.
func ParseColumnKey(header string) ColumnKey {
	k := ColumnKey{Raw: header, Base: header}

	name := header
	if strings.HasSuffix(name, "_TEXT") {
		k.TextField = true
		name = strings.TrimSuffix(name, "_TEXT")
	}

	parts := strings.Split(name, "_")

	// Peel off at most two trailing all-digit segments as sub-indices.
	var subs []string
	for len(parts) > 1 && len(subs) < 2 {
		last := parts[len(parts)-1]
		if !isDigits(last) {
			break
		}
		subs = append([]string{last}, subs...)
		parts = parts[:len(parts)-1]
	}

	k.Base = strings.Join(parts, "_")
	k.Sub = subs
	return k
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// SortSubKeys orders sub-index values numerically first, then
// case-insensitive alphabetically. Matrix rows and columns use this
// order so the rendered rectangle does not depend on column encounter
// order.
func SortSubKeys(keys []string) {
	sort.SliceStable(keys, func(i, j int) bool {
		ni, errI := strconv.Atoi(keys[i])
		nj, errJ := strconv.Atoi(keys[j])
		switch {
		case errI == nil && errJ == nil:
			return ni < nj
		case errI == nil:
			return true
		case errJ == nil:
			return false
		default:
			return strings.ToLower(keys[i]) < strings.ToLower(keys[j])
		}
	})
}
