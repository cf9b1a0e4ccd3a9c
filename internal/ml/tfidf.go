package ml

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// textTokenize lowercases text, splits on non-alphanumeric runes, and
// drops single-character tokens, mirroring the word tokenization the
// trained vocabularies were built with.
func textTokenize(text string) []string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, text)

	fields := strings.Fields(mapped)
	tokens := fields[:0]
	for _, f := range fields {
		if len(f) >= 2 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// ngrams expands tokens into unigrams and bigrams, skipping stop words.
// Bigrams are formed over the stop-word-filtered sequence, as TF-IDF
// implementations conventionally do.
func ngrams(tokens []string) []string {
	kept := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !stopWords[t] {
			kept = append(kept, t)
		}
	}

	terms := make([]string, 0, 2*len(kept))
	terms = append(terms, kept...)
	for i := 0; i+1 < len(kept); i++ {
		terms = append(terms, kept[i]+" "+kept[i+1])
	}
	return terms
}

// TFIDFVectorizer encodes a text field as an L2-normalized TF-IDF vector
// over a vocabulary of unigrams and bigrams learned at fit time. All
// fields are exported so a fitted vectorizer round-trips through JSON.
type TFIDFVectorizer struct {
	MaxFeatures int            `json:"maxFeatures"`
	Vocabulary  map[string]int `json:"vocabulary"` // term -> column index
	IDF         []float64      `json:"idf"`        // indexed by column
}

// NewTFIDFVectorizer creates an unfitted vectorizer.
func NewTFIDFVectorizer(maxFeatures int) *TFIDFVectorizer {
	if maxFeatures <= 0 {
		maxFeatures = 5000
	}
	return &TFIDFVectorizer{MaxFeatures: maxFeatures}
}

// Dim returns the width of the encoded vector space.
func (v *TFIDFVectorizer) Dim() int {
	return len(v.Vocabulary)
}

// Fit learns the vocabulary and inverse document frequencies from the
// training documents. The vocabulary keeps the MaxFeatures most frequent
// terms by document count, ties broken lexicographically so fitting is
// deterministic.
func (v *TFIDFVectorizer) Fit(docs []string) {
	docFreq := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, term := range ngrams(textTokenize(doc)) {
			if _, ok := seen[term]; !ok {
				seen[term] = struct{}{}
				docFreq[term]++
			}
		}
	}

	terms := make([]string, 0, len(docFreq))
	for term := range docFreq {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if docFreq[terms[i]] != docFreq[terms[j]] {
			return docFreq[terms[i]] > docFreq[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > v.MaxFeatures {
		terms = terms[:v.MaxFeatures]
	}

	// Column order is lexicographic over the kept terms, so the fitted
	// vector layout does not depend on frequency ties.
	sort.Strings(terms)

	n := float64(len(docs))
	v.Vocabulary = make(map[string]int, len(terms))
	v.IDF = make([]float64, len(terms))
	for i, term := range terms {
		v.Vocabulary[term] = i
		// Smoothed IDF: ln((1+n)/(1+df)) + 1
		v.IDF[i] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}
}

// Transform encodes one document as a sparse column->weight map,
// L2-normalized. Terms outside the vocabulary are ignored.
func (v *TFIDFVectorizer) Transform(doc string) map[int]float64 {
	counts := make(map[int]float64)
	for _, term := range ngrams(textTokenize(doc)) {
		if col, ok := v.Vocabulary[term]; ok {
			counts[col]++
		}
	}

	var sumSq float64
	for col, tf := range counts {
		w := tf * v.IDF[col]
		counts[col] = w
		sumSq += w * w
	}
	if sumSq > 0 {
		norm := math.Sqrt(sumSq)
		for col := range counts {
			counts[col] /= norm
		}
	}
	return counts
}
