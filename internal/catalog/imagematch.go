package catalog

import (
	"regexp"
	"strings"

	"github.com/pawhootz/storefront-backend/internal/models"
)

// Token-overlap scores at or below this are treated as coincidental.
const minTokenScore = 5

var nonAlnum = regexp.MustCompile(`[^a-z0-9\s]`)

func normalizeText(s string) string {
	return nonAlnum.ReplaceAllString(strings.ToLower(s), "")
}

func tokenize(s string) []string {
	var tokens []string
	for _, t := range strings.Fields(s) {
		if len(t) > 1 {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// FindBestImage picks the media file whose name best matches the product
// name and returns its URL, or "" when nothing matches convincingly.
//
// A containment match (normalized file name contains the normalized
// product name, or the product name contains the file's base name before
// its extension) scores 100 plus the file name length so longer, more
// specific names win. Anything else is scored by the summed length of
// product-name tokens appearing in the file name, with a +5 bonus when
// the file name starts with the first token. Ties keep the first file
// seen, so the result is deterministic for a given input order.
func FindBestImage(productName string, files []models.MediaFile) string {
	normName := normalizeText(productName)
	tokens := tokenize(normName)

	bestURL := ""
	bestScore := 0

	for _, f := range files {
		if f.Name == "" || f.IsDir || f.Type == "folder" {
			continue
		}

		normFile := normalizeText(f.Name)

		base := normalizeText(strings.SplitN(f.Name, ".", 2)[0])
		if strings.Contains(normFile, normName) || strings.Contains(normName, base) {
			if score := 100 + len(normFile); score > bestScore {
				bestURL, bestScore = f.URL, score
			}
			continue
		}

		score := 0
		for _, tok := range tokens {
			if strings.Contains(normFile, tok) {
				score += len(tok)
			}
		}
		if len(tokens) > 0 && strings.HasPrefix(normFile, tokens[0]) {
			score += 5
		}

		if score > minTokenScore && score > bestScore {
			bestURL, bestScore = f.URL, score
		}
	}

	return bestURL
}
