// Package spelling provides dictionary-based correction of chat input before
// it reaches intent classification and retrieval.
package spelling

import "strings"

const (
	// maxEditDistance is the largest edit distance a candidate may have.
	maxEditDistance = 2
	// minSimilarity is the normalized similarity a candidate must exceed.
	minSimilarity = 0.6
	// unknownTokenScore is the confidence contribution of a token that is
	// neither in the dictionary nor close enough to any entry.
	unknownTokenScore = 0.5
)

// Correction is the result of correcting one input string.
type Correction struct {
	Original    string   `json:"original"`
	Corrected   string   `json:"corrected"`
	Confidence  float64  `json:"confidence"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Corrector corrects tokens against a fixed dictionary.
type Corrector struct {
	words map[string]bool
	list  []string
}

// NewCorrector creates a corrector over the built-in bilingual dictionary.
func NewCorrector() *Corrector {
	return NewCorrectorWithWords(DefaultDictionary())
}

// NewCorrectorWithWords creates a corrector over the given word list.
func NewCorrectorWithWords(words []string) *Corrector {
	c := &Corrector{words: make(map[string]bool, len(words))}
	for _, w := range words {
		w = strings.ToLower(w)
		if !c.words[w] {
			c.words[w] = true
			c.list = append(c.list, w)
		}
	}
	return c
}

// Correct corrects the input token by token. Tokens found verbatim in the
// dictionary contribute 1.0 to the confidence; corrected tokens contribute
// their similarity; unknown tokens are left unchanged and contribute 0.5.
// Empty input is trivially corrected with confidence 1.0.
func (c *Corrector) Correct(input string) Correction {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return Correction{Original: input, Corrected: input, Confidence: 1.0}
	}

	corrected := make([]string, len(tokens))
	var suggestions []string
	var total float64

	for i, token := range tokens {
		lower := strings.ToLower(token)
		if c.words[lower] {
			corrected[i] = token
			total += 1.0
			continue
		}

		best, sim := c.nearest(lower)
		if best != "" {
			corrected[i] = best
			suggestions = append(suggestions, best)
			total += sim
			continue
		}

		corrected[i] = token
		total += unknownTokenScore
	}

	return Correction{
		Original:    input,
		Corrected:   strings.Join(corrected, " "),
		Confidence:  total / float64(len(tokens)),
		Suggestions: suggestions,
	}
}

// nearest returns the closest dictionary entry and its normalized similarity,
// or "" when no entry is acceptable.
func (c *Corrector) nearest(token string) (string, float64) {
	bestWord := ""
	bestDist := maxEditDistance + 1

	for _, w := range c.list {
		// Cheap length filter before computing the distance.
		if diff := len(w) - len(token); diff > maxEditDistance || diff < -maxEditDistance {
			continue
		}
		d := editDistance(token, w)
		if d < bestDist {
			bestDist = d
			bestWord = w
			if d == 1 {
				break
			}
		}
	}

	if bestWord == "" || bestDist > maxEditDistance {
		return "", 0
	}

	longer := len(token)
	if len(bestWord) > longer {
		longer = len(bestWord)
	}
	sim := 1.0 - float64(bestDist)/float64(longer)
	if sim <= minSimilarity {
		return "", 0
	}
	return bestWord, sim
}

// editDistance computes the Levenshtein distance with unit-cost insert,
// delete, and substitute operations.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min3(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
