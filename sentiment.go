package emotioncalc

import (
	"math"
	"strings"

	"github.com/affectkit/emotioncalc-go/annotate"
)

// ──────────────────────────────────────────────
// Sentiment Scorer — lexicon-and-rule scoring
// ──────────────────────────────────────────────

// SentimentScore holds the bounded sentiment channels for one input.
// All values live in [0,1]. Neutral and Intensity are derived:
// Neutral = max(0, 1-Positive-Negative),
// Intensity = min(1, Positive+Negative+Hostility).
type SentimentScore struct {
	Positive  float64 `json:"positive"`
	Negative  float64 `json:"negative"`
	Neutral   float64 `json:"neutral"`
	Hostility float64 `json:"hostility"`
	Intensity float64 `json:"intensity"`
}

// NeutralSentiment is the score for empty or unanalyzable input.
func NeutralSentiment() SentimentScore {
	return SentimentScore{Neutral: 1.0}
}

// negationWindow is how many non-trigger tokens a negation scope
// survives before it decays. Punctuation clears it immediately.
const negationWindow = 4

// SentimentScorer scores annotated token sequences against the
// configured lexicons.
type SentimentScorer struct {
	lex *Lexicon
}

// NewSentimentScorer creates a scorer with the built-in lexicon.
func NewSentimentScorer() *SentimentScorer {
	return &SentimentScorer{lex: DefaultLexicon()}
}

// NewSentimentScorerWithLexicon creates a scorer with a custom lexicon.
func NewSentimentScorerWithLexicon(lex *Lexicon) *SentimentScorer {
	return &SentimentScorer{lex: lex}
}

// Score produces a SentimentScore for one annotated input. The raw
// text is needed for the phrase-level negation correction pass, which
// catches negations the token window misses.
func (s *SentimentScorer) Score(tokens []annotate.Token, text string) SentimentScore {
	if len(tokens) == 0 {
		return NeutralSentiment()
	}

	var score SentimentScore
	consumed := make([]bool, len(tokens))
	negActive := false
	negRemaining := 0

	for i := 0; i < len(tokens); i++ {
		if consumed[i] {
			continue
		}
		tok := tokens[i]
		lower := strings.ToLower(tok.Text)

		if tok.IsPunct {
			negActive = false
			negRemaining = 0
			continue
		}

		if s.isNegationTrigger(tokens, i, lower) {
			negActive = true
			negRemaining = negationWindow
			continue
		}

		// Two-word modifier phrases take precedence over single words.
		if i+1 < len(tokens) && !consumed[i+1] {
			phrase := lower + " " + tokens[i+1].Lemma
			if mult, ok := s.lex.PhraseModifiers[phrase]; ok {
				consumed[i] = true
				consumed[i+1] = true
				if i+2 < len(tokens) {
					consumed[i+2] = true
					s.scoreToken(&score, tokens[i+2].Lemma, mult, negActive)
					negActive, negRemaining = decayNegation(negActive, negRemaining)
				}
				continue
			}
		}
		if mult, ok := s.lex.Modifiers[lower]; ok {
			if i+1 < len(tokens) && !consumed[i+1] {
				consumed[i+1] = true
				s.scoreToken(&score, tokens[i+1].Lemma, mult, negActive)
				negActive, negRemaining = decayNegation(negActive, negRemaining)
			}
			continue
		}

		s.scoreToken(&score, tok.Lemma, 1.0, negActive)
		negActive, negRemaining = decayNegation(negActive, negRemaining)
	}

	s.applyPhraseNegations(&score, strings.ToLower(text))

	score.Positive = clamp01(score.Positive)
	score.Negative = clamp01(score.Negative)
	score.Hostility = clamp01(score.Hostility)
	score.Neutral = math.Max(0, 1-score.Positive-score.Negative)
	score.Intensity = math.Min(1, score.Positive+score.Negative+score.Hostility)
	return score
}

// isNegationTrigger checks the negation set, the contraction suffix
// and the split-token case ("do" + "n't").
func (s *SentimentScorer) isNegationTrigger(tokens []annotate.Token, i int, lower string) bool {
	if s.lex.isNegation(lower) || strings.HasSuffix(lower, "n't") {
		return true
	}
	if i > 0 {
		joined := strings.ToLower(tokens[i-1].Text) + lower
		if s.lex.isNegation(joined) {
			return true
		}
	}
	return false
}

// scoreToken looks a lemma up in all three lexicons; every match
// contributes independently. Under an active negation scope a positive
// hit flips to negative, a negative hit flips to positive (and damps
// negative by half its weight), and a hostile hit is dampened to 30%.
func (s *SentimentScorer) scoreToken(score *SentimentScore, lemma string, mult float64, negated bool) {
	if w, ok := s.lex.Positive[lemma]; ok {
		if negated {
			score.Negative += w * mult
		} else {
			score.Positive += w * mult
		}
	}
	if w, ok := s.lex.Negative[lemma]; ok {
		if negated {
			score.Positive += w * mult
			score.Negative = math.Max(0, score.Negative-0.5*w*mult)
		} else {
			score.Negative += w * mult
		}
	}
	if w, ok := s.lex.Hostile[lemma]; ok {
		if negated {
			score.Hostility += 0.3 * w * mult
		} else {
			score.Hostility += w * mult
		}
	}
}

func decayNegation(active bool, remaining int) (bool, int) {
	if !active {
		return false, 0
	}
	remaining--
	if remaining <= 0 {
		return false, 0
	}
	return true, remaining
}

// applyPhraseNegations scans the raw lowercased text for a negation
// phrase immediately followed by a lexicon word and applies the
// flip/dampen rules directly to the aggregate. This is additive on top
// of the windowed pass; occurrences caught by both contribute twice.
func (s *SentimentScorer) applyPhraseNegations(score *SentimentScore, lowerText string) {
	for _, neg := range negationPhrases {
		for _, word := range s.lex.sortedPositive {
			if strings.Contains(lowerText, neg+" "+word) {
				score.Negative += s.lex.Positive[word]
			}
		}
		for _, word := range s.lex.sortedNegative {
			if strings.Contains(lowerText, neg+" "+word) {
				w := s.lex.Negative[word]
				score.Positive += w
				score.Negative = math.Max(0, score.Negative-0.5*w)
			}
		}
		for _, word := range s.lex.sortedHostile {
			if strings.Contains(lowerText, neg+" "+word) {
				score.Hostility += 0.3 * s.lex.Hostile[word]
			}
		}
	}
}
