package emotioncalc

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ──────────────────────────────────────────────
// Adaptive Learner — association tables + retrieval
// ──────────────────────────────────────────────

// maxHistorySize caps the persisted interaction history; oldest
// records are evicted first.
const maxHistorySize = 1000

// learnerFilterThreshold is the minimum weight kept after a learned
// adjustment.
const learnerFilterThreshold = 0.05

// phraseAssociationBoost is how much more a bigram association counts
// than a single word when the tables are built.
const phraseAssociationBoost = 1.2

// phraseAdjustmentBoost is how much more a bigram hit counts than a
// word hit when adjusting a prediction.
const phraseAdjustmentBoost = 1.5

// Learner accumulates word/phrase/context-emotion associations from
// interaction history and uses them to nudge future predictions. It
// exclusively owns the interaction store and the derived tables.
type Learner struct {
	store   InteractionStore
	history []Interaction

	wordAssoc    map[string]map[string]float64
	phraseAssoc  map[string]map[string]float64
	contextAssoc map[string]map[string]float64
}

// NewLearner loads the persisted history from the store and builds the
// association tables. A store that fails to load starts empty.
func NewLearner(s InteractionStore) (*Learner, error) {
	if s == nil {
		return nil, fmt.Errorf("learner: nil store")
	}
	history, err := s.Load()
	if err != nil {
		log.Printf("[Learner] history load failed, starting empty: %v", err)
		history = nil
	}
	l := &Learner{store: s, history: history}
	l.rebuildAssociations()
	return l, nil
}

// HistorySize returns the number of retained interactions.
func (l *Learner) HistorySize() int {
	return len(l.history)
}

// LearningFactor is how strongly learned patterns pull on a
// prediction: it grows with history size and saturates at 0.3.
func (l *Learner) LearningFactor() float64 {
	f := float64(len(l.history)) / 100
	if f > 0.3 {
		f = 0.3
	}
	return f
}

// rebuildAssociations rebuilds all three tables in full from the
// current history. At the 1000-record cap this is cheap enough to run
// on every write.
func (l *Learner) rebuildAssociations() {
	l.wordAssoc = make(map[string]map[string]float64)
	l.phraseAssoc = make(map[string]map[string]float64)
	l.contextAssoc = make(map[string]map[string]float64)

	for _, interaction := range l.history {
		text := strings.ToLower(interaction.InputText)
		if text == "" || len(interaction.Emotions) == 0 {
			continue
		}

		if dominant := interaction.Emotions.Dominant(); dominant != "" {
			addAssoc(l.contextAssoc, interaction.Context, dominant, 1)
		}

		words := strings.Fields(text)
		for _, word := range words {
			for _, ew := range interaction.Emotions {
				addAssoc(l.wordAssoc, word, ew.Emotion, ew.Weight)
			}
		}
		for i := 0; i+1 < len(words); i++ {
			bigram := words[i] + " " + words[i+1]
			for _, ew := range interaction.Emotions {
				addAssoc(l.phraseAssoc, bigram, ew.Emotion, ew.Weight*phraseAssociationBoost)
			}
		}
	}
}

func addAssoc(table map[string]map[string]float64, key, emotion string, weight float64) {
	inner, ok := table[key]
	if !ok {
		inner = make(map[string]float64)
		table[key] = inner
	}
	inner[emotion] += weight
}

// RecordInteraction appends a new interaction, truncates the history
// to the cap, rebuilds the association tables and persists the store.
func (l *Learner) RecordInteraction(text string, emotions Distribution, contextType string, feedback map[string]float64) error {
	interaction := Interaction{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		InputText: text,
		Emotions:  emotions,
		Context:   contextType,
		Feedback:  feedback,
	}
	l.history = append(l.history, interaction)
	if len(l.history) > maxHistorySize {
		l.history = l.history[len(l.history)-maxHistorySize:]
	}
	l.rebuildAssociations()

	if err := l.store.Save(l.history); err != nil {
		return fmt.Errorf("persist history: %w", err)
	}
	return nil
}

// ProvideFeedback validates and normalizes caller feedback, attaches
// it to the interaction identified by ID (or its RFC3339 timestamp)
// and persists the store.
func (l *Learner) ProvideFeedback(id string, feedback map[string]float64) error {
	if err := ValidateFeedback(feedback); err != nil {
		return err
	}
	normalized := normalizeFeedback(feedback)

	for i := range l.history {
		if l.history[i].ID == id || l.history[i].Timestamp.Format(time.RFC3339) == id {
			l.history[i].Feedback = normalized
			if err := l.store.Save(l.history); err != nil {
				return fmt.Errorf("persist feedback: %w", err)
			}
			return nil
		}
	}
	return fmt.Errorf("no interaction with id %q", id)
}

// ValidateFeedback rejects malformed caller feedback at the boundary:
// it must be non-empty, name only known emotions and carry weights in
// [0,1].
func ValidateFeedback(feedback map[string]float64) error {
	if len(feedback) == 0 {
		return fmt.Errorf("feedback is empty")
	}
	for emotion, weight := range feedback {
		if !IsEmotion(emotion) {
			return fmt.Errorf("unknown emotion %q in feedback", emotion)
		}
		if weight < 0 || weight > 1 {
			return fmt.Errorf("feedback weight for %s out of range: %v", emotion, weight)
		}
	}
	return nil
}

func normalizeFeedback(feedback map[string]float64) map[string]float64 {
	var total float64
	for _, w := range feedback {
		total += w
	}
	out := make(map[string]float64, len(feedback))
	for e, w := range feedback {
		if total > 0 {
			out[e] = w / total
		} else {
			out[e] = w
		}
	}
	return out
}

// Adjust blends learned associations into a base distribution. With an
// empty history the base is returned unchanged.
func (l *Learner) Adjust(text string, contextType string, base Distribution) Distribution {
	if len(l.history) == 0 {
		return base
	}

	words := strings.Fields(strings.ToLower(text))
	factor := l.LearningFactor()

	wordAdj := make(map[string]float64)
	for _, word := range words {
		accumulateNormalized(wordAdj, l.wordAssoc[word], 1)
	}
	phraseAdj := make(map[string]float64)
	for i := 0; i+1 < len(words); i++ {
		bigram := words[i] + " " + words[i+1]
		accumulateNormalized(phraseAdj, l.phraseAssoc[bigram], phraseAdjustmentBoost)
	}
	contextAdj := make(map[string]float64)
	accumulateNormalized(contextAdj, l.contextAssoc[contextType], 1)

	// Blend over the union of emotions seen in the base or any
	// adjustment source.
	union := make(map[string]bool)
	for _, ew := range base {
		union[ew.Emotion] = true
	}
	for e := range wordAdj {
		union[e] = true
	}
	for e := range phraseAdj {
		union[e] = true
	}
	for e := range contextAdj {
		union[e] = true
	}

	baseMap := base.Map()
	adjusted := make(map[string]float64, len(union))
	emotions := make([]string, 0, len(union))
	for e := range union {
		emotions = append(emotions, e)
	}
	sort.Strings(emotions)
	for _, e := range emotions {
		learned := 0.4*wordAdj[e] + 0.4*phraseAdj[e] + 0.2*contextAdj[e]
		adjusted[e] = baseMap[e]*(1-factor) + factor*learned
	}

	return newDistribution(adjusted, learnerFilterThreshold)
}

// accumulateNormalized normalizes one association row to sum 1 and
// adds it into dst scaled by boost.
func accumulateNormalized(dst map[string]float64, row map[string]float64, boost float64) {
	if len(row) == 0 {
		return
	}
	var total float64
	for _, w := range row {
		total += w
	}
	if total <= 0 {
		return
	}
	emotions := make([]string, 0, len(row))
	for e := range row {
		emotions = append(emotions, e)
	}
	sort.Strings(emotions)
	for _, e := range emotions {
		dst[e] += row[e] / total * boost
	}
}

// FindSimilar retrieves up to limit past interactions in the same
// context, ranked by Jaccard similarity of their word sets against the
// query. An exact text match scores 1.0; candidates with no word
// overlap are discarded. Ties keep store order.
func (l *Learner) FindSimilar(text string, contextType string, limit int) []Interaction {
	if len(l.history) == 0 || limit <= 0 {
		return nil
	}

	textLower := strings.ToLower(text)
	words := fieldSet(textLower)

	type scored struct {
		index      int
		similarity float64
	}
	var candidates []scored
	for i, interaction := range l.history {
		if interaction.Context != contextType {
			continue
		}
		pastLower := strings.ToLower(interaction.InputText)
		pastWords := fieldSet(pastLower)

		common := 0
		for w := range words {
			if pastWords[w] {
				common++
			}
		}
		if common == 0 {
			continue
		}
		unionSize := len(words) + len(pastWords) - common
		similarity := float64(common) / float64(unionSize)
		if textLower == pastLower {
			similarity = 1.0
		}
		candidates = append(candidates, scored{index: i, similarity: similarity})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].similarity > candidates[j].similarity
	})
	if limit > len(candidates) {
		limit = len(candidates)
	}
	out := make([]Interaction, 0, limit)
	for _, c := range candidates[:limit] {
		out = append(out, l.history[c.index])
	}
	return out
}

func fieldSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(text) {
		set[w] = true
	}
	return set
}
