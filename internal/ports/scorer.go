package ports

// Scorer defines the interface for computing a normalized similarity score
// between two strings. Scores are in [0, 1], where 1 means identical.
type Scorer interface {
	Score(a, b string) float64

	// BestMatch scans the corpus and returns the entry with the highest
	// score against the candidate. The first occurrence wins on ties.
	// ok is false only when the corpus is empty.
	BestMatch(candidate string, corpus []string) (match string, score float64, ok bool)
}
