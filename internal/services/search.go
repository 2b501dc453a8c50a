// Package services – search matching
//
// This file implements the in-memory multi-word client matcher used when
// accent-insensitive search is enabled. The SQL path (repo.SearchClients)
// covers the store-collation behavior of the original application; this
// matcher additionally folds combining marks so that "garcia" matches
// "García". Folding is Unicode-correct (NFD decomposition, strip Mn marks,
// NFC recomposition) via golang.org/x/text.
package services

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/salonsuite/go-salon-backend/internal/domain"
)

// foldAccents removes combining marks from s ("García" -> "Garcia").
// A fresh transformer chain is built per call; chains carry state and are
// not safe for concurrent reuse.
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// normalizeSearchTerm lowercases s, optionally folding accents first.
func normalizeSearchTerm(s string, fold bool) string {
	if fold {
		s = foldAccents(s)
	}
	return strings.ToLower(s)
}

// matchClient reports whether c matches every token: each token must be a
// substring of the (normalized) first name or last name. AND across
// tokens, OR across the two fields per token.
func matchClient(c domain.Client, tokens []string, fold bool) bool {
	first := normalizeSearchTerm(c.FirstName, fold)
	last := normalizeSearchTerm(c.LastName, fold)
	for _, tok := range tokens {
		t := normalizeSearchTerm(tok, fold)
		if !strings.Contains(first, t) && !strings.Contains(last, t) {
			return false
		}
	}
	return true
}

// filterClients returns the subset of clients matching all tokens,
// preserving input order.
func filterClients(clients []domain.Client, tokens []string, fold bool) []domain.Client {
	out := make([]domain.Client, 0, len(clients))
	for _, c := range clients {
		if matchClient(c, tokens, fold) {
			out = append(out, c)
		}
	}
	return out
}
