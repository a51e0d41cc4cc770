package emotioncalc

import "sort"

// ──────────────────────────────────────────────
// Sentiment lexicons — immutable configuration
// ──────────────────────────────────────────────

// Lexicon bundles the weighted word lists and modifier tables used by
// the sentiment scorer. Loaded once at startup and never mutated.
type Lexicon struct {
	// Positive, Negative and Hostile map a lemma to a weight in [0,1].
	Positive map[string]float64
	Negative map[string]float64
	Hostile  map[string]float64

	// Negations are full-word negation triggers. Tokens ending in the
	// contraction suffix "n't" also trigger, as does a token whose
	// concatenation with its predecessor matches an entry here
	// (tokenizers that split "do"+"n't").
	Negations map[string]bool

	// Modifiers maps a single intensifier/diminisher word to its
	// multiplier; intensifiers are >1, diminishers <1.
	Modifiers map[string]float64

	// PhraseModifiers maps a two-word modifier phrase ("kind of") to
	// its multiplier. Checked before single-word modifiers.
	PhraseModifiers map[string]float64

	// sortedPositive/Negative/Hostile hold the lexicon words in sorted
	// order for the deterministic phrase-negation pass.
	sortedPositive []string
	sortedNegative []string
	sortedHostile  []string
}

// negationPhrases are the literal prefixes scanned by the phrase-level
// negation correction pass.
var negationPhrases = []string{"don't", "doesn't", "didn't", "isn't", "not", "never"}

// DefaultLexicon returns the built-in English lexicon.
func DefaultLexicon() *Lexicon {
	lex := &Lexicon{
		Positive: map[string]float64{
			"good": 0.5, "great": 0.7, "excellent": 0.9, "happy": 0.7,
			"love": 0.8, "like": 0.4, "nice": 0.5, "amazing": 0.8,
			"wonderful": 0.8, "awesome": 0.8, "fantastic": 0.8,
			"glad": 0.6, "thank": 0.5, "best": 0.7, "enjoy": 0.6,
			"fun": 0.5, "beautiful": 0.6, "perfect": 0.8, "cool": 0.4,
			"sweet": 0.4, "brilliant": 0.7, "delightful": 0.7,
		},
		Negative: map[string]float64{
			"bad": 0.5, "terrible": 0.8, "awful": 0.8, "sad": 0.6,
			"hate": 0.9, "dislike": 0.5, "horrible": 0.8,
			"disappointing": 0.6, "worst": 0.8, "angry": 0.6,
			"annoying": 0.5, "ugly": 0.5, "stupid": 0.6, "boring": 0.4,
			"wrong": 0.4, "miserable": 0.7, "disgusting": 0.7,
		},
		Hostile: map[string]float64{
			"kill": 0.9, "hurt": 0.6, "destroy": 0.8, "attack": 0.7,
			"fight": 0.5, "die": 0.6, "punch": 0.5, "threaten": 0.6,
			"stab": 0.8, "shoot": 0.8, "crush": 0.5,
		},
		Negations: map[string]bool{
			"no": true, "not": true, "never": true, "none": true,
			"nobody": true, "nothing": true, "neither": true,
			"nowhere": true, "hardly": true, "scarcely": true,
			"don't": true, "doesn't": true, "didn't": true,
			"isn't": true, "aren't": true, "wasn't": true,
			"weren't": true, "can't": true, "cannot": true,
			"couldn't": true, "won't": true, "wouldn't": true,
			"shouldn't": true, "ain't": true,
		},
		Modifiers: map[string]float64{
			// intensifiers
			"very": 1.5, "really": 1.4, "extremely": 1.8, "so": 1.3,
			"totally": 1.6, "absolutely": 1.7, "incredibly": 1.7,
			"truly": 1.4,
			// diminishers
			"slightly": 0.5, "somewhat": 0.6, "barely": 0.3,
			"mildly": 0.6, "fairly": 0.8,
		},
		PhraseModifiers: map[string]float64{
			"kind of": 0.6,
			"sort of": 0.6,
			"a bit":   0.5,
			"way too": 1.6,
		},
	}
	lex.index()
	return lex
}

// index precomputes the sorted word lists. Must be called after any
// custom lexicon is assembled.
func (l *Lexicon) index() {
	l.sortedPositive = sortedKeys(l.Positive)
	l.sortedNegative = sortedKeys(l.Negative)
	l.sortedHostile = sortedKeys(l.Hostile)
}

func (l *Lexicon) isNegation(word string) bool {
	return l.Negations[word]
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
