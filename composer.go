package emotioncalc

import (
	"sort"
	"strings"
)

// ──────────────────────────────────────────────
// Emotion Composer — layered heuristic blending
// ──────────────────────────────────────────────

// baseEmotionValue seeds every category before composition.
const baseEmotionValue = 0.05

// composerFilterThreshold is the minimum weight retained in a composed
// distribution.
const composerFilterThreshold = 0.06

// EmotionComposer blends sentiment, linguistic features and context
// into a weighted emotion distribution. Compose is a pure function of
// its inputs: identical inputs reproduce identical output bit for bit.
type EmotionComposer struct {
	tables *ComposerTables
}

// NewEmotionComposer creates a composer with the built-in tables.
func NewEmotionComposer() *EmotionComposer {
	return &EmotionComposer{tables: DefaultComposerTables()}
}

// NewEmotionComposerWithTables creates a composer with custom tables.
func NewEmotionComposerWithTables(t *ComposerTables) *EmotionComposer {
	return &EmotionComposer{tables: t}
}

// Compose runs the ordered composition stages and returns the
// normalized, ranked distribution.
func (c *EmotionComposer) Compose(sentiment SentimentScore, features LinguisticFeatures, text string, ctx Context) Distribution {
	acc := make(map[string]float64, len(BaseEmotions))
	for _, e := range BaseEmotions {
		acc[e] = baseEmotionValue
	}
	lowerText := strings.ToLower(text)

	c.applyPhraseTriggers(acc, lowerText, ctx)
	c.applyPatternTriggers(acc, lowerText, ctx)
	applySentimentRouting(acc, sentiment, ctx)

	// Global intensity scaling: flat affect damps everything, intense
	// input amplifies it.
	scale := 0.5 + sentiment.Intensity/2
	for _, e := range BaseEmotions {
		acc[e] *= scale
	}

	applyFeatureAdjustments(acc, features, ctx)
	c.applyKeywords(acc, features.KeyWords, ctx)
	c.applyContextWeights(acc, ctx)

	return newDistribution(acc, composerFilterThreshold)
}

func (c *EmotionComposer) applyPhraseTriggers(acc map[string]float64, lowerText string, ctx Context) {
	for _, pt := range c.tables.PhraseTriggers {
		if pt.OnlyContext != "" && pt.OnlyContext != ctx.Type {
			continue
		}
		if strings.Contains(lowerText, pt.Phrase) {
			acc[pt.Emotion] += pt.Intensity * ctx.Confidence
		}
	}
}

func (c *EmotionComposer) applyPatternTriggers(acc map[string]float64, lowerText string, ctx Context) {
	// Deterministic order over the pattern table.
	emotions := make([]string, 0, len(c.tables.PatternTriggers))
	for e := range c.tables.PatternTriggers {
		emotions = append(emotions, e)
	}
	sort.Strings(emotions)
	for _, emotion := range emotions {
		for _, sub := range c.tables.PatternTriggers[emotion] {
			if strings.Contains(lowerText, sub) {
				acc[emotion] += 0.4 * ctx.Confidence
			}
		}
	}
}

// applySentimentRouting distributes the sentiment channels across
// emotion categories. Hostility routes differently per context: a
// friend being hostile reads as joking, an enemy as a threat.
func applySentimentRouting(acc map[string]float64, s SentimentScore, ctx Context) {
	if s.Positive > 0 {
		for _, r := range positiveRouting {
			acc[r.Emotion] += s.Positive * r.Weight
		}
	}
	if s.Negative > 0 {
		for _, r := range negativeRouting {
			acc[r.Emotion] += s.Negative * r.Weight
		}
	}
	if s.Hostility > 0 {
		switch ctx.Type {
		case ContextFriend:
			for _, r := range hostilityFriendRouting {
				acc[r.Emotion] += s.Hostility * r.Weight
			}
			if s.Hostility > 0.7 {
				// Even a friend crossing this line lands oddly.
				acc[Confused] += s.Hostility * 0.2
				afraidScale := 1 - ctx.Confidence
				if afraidScale < 0.2 {
					afraidScale = 0.2
				}
				acc[Afraid] += s.Hostility * 0.1 * afraidScale
			}
		case ContextEnemy:
			for _, r := range hostilityEnemyRouting {
				acc[r.Emotion] += s.Hostility * r.Weight
			}
			if ctx.Confidence > 0.8 {
				acc[Nervous] += s.Hostility * 0.2
			}
		default:
			for _, r := range hostilityOtherRouting {
				acc[r.Emotion] += s.Hostility * r.Weight
			}
		}
	}
}

func applyFeatureAdjustments(acc map[string]float64, features LinguisticFeatures, ctx Context) {
	if features.IsQuestion {
		acc[Curious] += 0.3
		acc[Confused] += 0.1
	}
	if features.IsExclamatory {
		for _, e := range topEmotions(acc, 3) {
			acc[e] *= 1.3
		}
	}
	if features.IsImperative {
		switch ctx.Type {
		case ContextFriend:
			acc[Curious] += 0.2
		case ContextEnemy:
			acc[Angry] += 0.2
			acc[Disgusted] += 0.1
		}
	}
}

func (c *EmotionComposer) applyKeywords(acc map[string]float64, keyWords []string, ctx Context) {
	for _, word := range keyWords {
		effect, ok := c.tables.Keywords[word]
		if !ok {
			continue
		}
		for _, add := range effect.resolve(ctx.Type) {
			acc[add.Emotion] += add.Weight
		}
	}
}

// applyContextWeights multiplies affected emotions by the per-context
// table, with each multiplier's pull toward/away from 1 scaled by the
// context confidence.
func (c *EmotionComposer) applyContextWeights(acc map[string]float64, ctx Context) {
	weights, ok := c.tables.ContextWeights[ctx.Type]
	if !ok {
		return
	}
	emotions := make([]string, 0, len(weights))
	for e := range weights {
		emotions = append(emotions, e)
	}
	sort.Strings(emotions)
	for _, e := range emotions {
		mult := 1 + (weights[e]-1)*ctx.Confidence
		acc[e] *= mult
	}
}

// topEmotions returns the k highest-valued emotions, ties broken by
// name so the selection is deterministic.
func topEmotions(acc map[string]float64, k int) []string {
	type entry struct {
		emotion string
		value   float64
	}
	entries := make([]entry, 0, len(acc))
	for e, v := range acc {
		entries = append(entries, entry{e, v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].value != entries[j].value {
			return entries[i].value > entries[j].value
		}
		return entries[i].emotion < entries[j].emotion
	})
	if k > len(entries) {
		k = len(entries)
	}
	out := make([]string, k)
	for i := 0; i < k; i++ {
		out[i] = entries[i].emotion
	}
	return out
}
