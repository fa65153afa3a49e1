package embedding

import (
	"math"
	"strings"
)

// Cosine returns the cosine similarity between two vectors in [-1,1].
// Mismatched lengths or zero vectors yield 0.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// CosineToUnit maps cosine similarity from [-1,1] to [0,1]
func CosineToUnit(cos float64) float64 {
	v := (cos + 1.0) / 2.0
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// TokenSimilarity is the lexical fallback used when the embedding
// collaborator is unavailable: word-level Jaccard overlap between two
// texts, in [0,1]. Deterministic by construction.
func TokenSimilarity(a, b string) float64 {
	ta := textTokens(a)
	tb := textTokens(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	common := 0
	union := len(ta)
	for tok := range tb {
		if ta[tok] {
			common++
		} else {
			union++
		}
	}
	return float64(common) / float64(union)
}

// textStopWords are skipped when tokenizing free text for overlap
var textStopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true,
	"but": true, "in": true, "on": true, "at": true, "to": true,
	"for": true, "of": true, "with": true, "by": true, "is": true,
	"are": true, "we": true, "our": true, "you": true, "your": true,
}

func textTokens(text string) map[string]bool {
	tokens := make(map[string]bool)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ".,!?;:()\"'")
		if len(word) < 3 || textStopWords[word] {
			continue
		}
		tokens[word] = true
	}
	return tokens
}
