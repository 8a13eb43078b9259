package statement

import (
	"math"
	"strings"

	"leadhub/domain/statement"

	"gonum.org/v1/gonum/floats"
)

// Similarity scores how alike statement documents read, as a fraud
// signal: two "different" months that are near-identical text usually
// mean a re-dated copy.
type Similarity struct{}

// NewSimilarity creates the scorer.
func NewSimilarity() *Similarity {
	return &Similarity{}
}

// Pairwise computes TF-IDF cosine similarity for every document pair,
// in upload order. Documents without text score 0 against everything.
func (s *Similarity) Pairwise(docs []statement.Document) []statement.SimilarityPair {
	if len(docs) < 2 {
		return nil
	}

	counts := make([]map[string]float64, len(docs))
	df := make(map[string]float64)
	for i, doc := range docs {
		counts[i] = termCounts(doc.Text)
		for term := range counts[i] {
			df[term]++
		}
	}

	vocab := make([]string, 0, len(df))
	for term := range df {
		vocab = append(vocab, term)
	}

	n := float64(len(docs))
	vectors := make([][]float64, len(docs))
	for i := range docs {
		vec := make([]float64, len(vocab))
		for j, term := range vocab {
			if tf := counts[i][term]; tf > 0 {
				vec[j] = tf * (math.Log(n/df[term]) + 1)
			}
		}
		vectors[i] = vec
	}

	var pairs []statement.SimilarityPair
	for i := 0; i < len(docs); i++ {
		for j := i + 1; j < len(docs); j++ {
			pairs = append(pairs, statement.SimilarityPair{
				FileA: docs[i].Filename,
				FileB: docs[j].Filename,
				Score: cosine(vectors[i], vectors[j]),
			})
		}
	}
	return pairs
}

func cosine(a, b []float64) float64 {
	normA := floats.Norm(a, 2)
	normB := floats.Norm(b, 2)
	if normA == 0 || normB == 0 {
		return 0
	}
	return floats.Dot(a, b) / (normA * normB)
}

// termCounts tokenizes normalized text into word frequencies. Single
// characters are noise from PDF extraction and are dropped.
func termCounts(text string) map[string]float64 {
	counts := make(map[string]float64)
	for _, word := range strings.Fields(NormalizeDescription(text)) {
		if len(word) >= 2 {
			counts[word]++
		}
	}
	return counts
}
