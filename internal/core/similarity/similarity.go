package similarity

import (
	"github.com/baditaflorin/go_password_strength/internal/pool"
	"github.com/baditaflorin/go_password_strength/internal/ports"
)

// Default capacities for the pooled buffers. Wordlist entries and passwords
// are short; rows and rune buffers only grow past this for unusual inputs.
const (
	defaultRowCapacity  = 64
	defaultRuneCapacity = 64
)

// Scorer computes a normalized Levenshtein similarity between strings.
// The score is 1 - distance/maxLen over Unicode scalar values, so identical
// strings score 1.0 and wholly unrelated strings of similar length can
// score 0.0.
type Scorer struct {
	logger ports.Logger
	rows   *pool.RowPool
	runes  *pool.RuneBufferPool
}

// NewScorer creates a new similarity scorer.
func NewScorer(logger ports.Logger) *Scorer {
	return &Scorer{
		logger: logger,
		rows:   pool.NewRowPool(defaultRowCapacity),
		runes:  pool.NewRuneBufferPool(defaultRuneCapacity),
	}
}

// Score computes the normalized similarity between a and b.
func (s *Scorer) Score(a, b string) float64 {
	if a == b {
		return 1.0
	}

	aBuf := s.runes.Get()
	bBuf := s.runes.Get()
	defer s.runes.Put(aBuf)
	defer s.runes.Put(bBuf)

	ar := appendRunes(*aBuf, a)
	br := appendRunes(*bBuf, b)
	*aBuf, *bBuf = ar, br

	maxLen := max(len(ar), len(br))
	if maxLen == 0 {
		return 1.0
	}

	dist := s.distance(ar, br)
	return 1.0 - float64(dist)/float64(maxLen)
}

// BestMatch scans the entire corpus and returns the entry with the highest
// score against the candidate. The scan never terminates early; on exact
// ties the first occurrence wins. ok is false only for an empty corpus.
func (s *Scorer) BestMatch(candidate string, corpus []string) (match string, score float64, ok bool) {
	if len(corpus) == 0 {
		s.logger.Debug("Best match requested over empty corpus")
		return "", 0, false
	}

	s.logger.Debug("Scanning corpus for best match", "corpus_size", len(corpus))

	match = corpus[0]
	score = s.Score(candidate, corpus[0])
	for _, entry := range corpus[1:] {
		if sc := s.Score(candidate, entry); sc > score {
			match = entry
			score = sc
		}
	}

	s.logger.Debug("Best match found", "match", match, "score", score)
	return match, score, true
}

// distance computes the Levenshtein distance between two rune slices using
// two matrix rows borrowed from the pool.
func (s *Scorer) distance(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prevPtr := s.rows.Get()
	currPtr := s.rows.Get()
	defer s.rows.Put(prevPtr)
	defer s.rows.Put(currPtr)

	prev := (*prevPtr)[:0]
	curr := (*currPtr)[:0]

	for j := 0; j <= len(b); j++ {
		prev = append(prev, j)
	}

	for i := 1; i <= len(a); i++ {
		curr = curr[:0]
		curr = append(curr, i)
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			// Minimum of deletion, insertion and substitution.
			curr = append(curr, min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}

	dist := prev[len(b)]
	*prevPtr, *currPtr = prev, curr
	return dist
}

// appendRunes decodes s into the provided buffer, reusing its capacity.
func appendRunes(buf []rune, s string) []rune {
	for _, r := range s {
		buf = append(buf, r)
	}
	return buf
}
