package emotioncalc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// ──────────────────────────────────────────────
// Emotion categories and weighted distributions
// ──────────────────────────────────────────────

// The fixed emotion vocabulary. Every distribution produced by this
// package draws from these fifteen categories.
const (
	Happy     = "Happy"
	Sad       = "Sad"
	Angry     = "Angry"
	Afraid    = "Afraid"
	Surprised = "Surprised"
	Disgusted = "Disgusted"
	Curious   = "Curious"
	Excited   = "Excited"
	Calm      = "Calm"
	Loving    = "Loving"
	Proud     = "Proud"
	Grateful  = "Grateful"
	Nervous   = "Nervous"
	Confused  = "Confused"
	Amused    = "Amused"
)

// BaseEmotions lists all emotion categories in their canonical order.
var BaseEmotions = []string{
	Happy, Sad, Angry, Afraid, Surprised,
	Disgusted, Curious, Excited, Calm, Loving,
	Proud, Grateful, Nervous, Confused, Amused,
}

// IsEmotion reports whether name is one of the fixed categories.
func IsEmotion(name string) bool {
	for _, e := range BaseEmotions {
		if e == name {
			return true
		}
	}
	return false
}

// EmotionWeight is a single ranked entry of a Distribution.
type EmotionWeight struct {
	Emotion string
	Weight  float64
}

// Distribution is an ordered mapping from emotion to weight.
// Slice order is the ranking: entry 0 is the dominant emotion.
// A non-empty distribution sums to 1.0 within floating tolerance.
type Distribution []EmotionWeight

// Get returns the weight for an emotion and whether it is present.
func (d Distribution) Get(emotion string) (float64, bool) {
	for _, ew := range d {
		if ew.Emotion == emotion {
			return ew.Weight, true
		}
	}
	return 0, false
}

// Dominant returns the top-ranked emotion, or "" for an empty distribution.
func (d Distribution) Dominant() string {
	if len(d) == 0 {
		return ""
	}
	return d[0].Emotion
}

// Sum returns the total weight.
func (d Distribution) Sum() float64 {
	vals := make([]float64, len(d))
	for i, ew := range d {
		vals[i] = ew.Weight
	}
	return floats.Sum(vals)
}

// Map returns the distribution as a plain map.
func (d Distribution) Map() map[string]float64 {
	m := make(map[string]float64, len(d))
	for _, ew := range d {
		m[ew.Emotion] = ew.Weight
	}
	return m
}

// Rank returns the position of an emotion in the ranking (0-based),
// or -1 if absent.
func (d Distribution) Rank(emotion string) int {
	for i, ew := range d {
		if ew.Emotion == emotion {
			return i
		}
	}
	return -1
}

// MarshalJSON renders the distribution as a JSON object whose key order
// is the ranking.
func (d Distribution) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, ew := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(ew.Emotion)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		fmt.Fprintf(&buf, "%g", ew.Weight)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON parses a JSON object, preserving its key order as the
// ranking.
func (d *Distribution) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("distribution: expected object, got %v", tok)
	}
	var out Distribution
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("distribution: non-string key %v", keyTok)
		}
		var val float64
		if err := dec.Decode(&val); err != nil {
			return fmt.Errorf("distribution: value for %q: %w", key, err)
		}
		out = append(out, EmotionWeight{Emotion: key, Weight: val})
	}
	*d = out
	return nil
}

// newDistribution turns an accumulator into a normalized, filtered,
// ranked Distribution. Values are clamped to [0,1], normalized to sum
// 1.0, entries below minWeight are dropped and the remainder is
// renormalized. The accumulator is drained in sorted key order so the
// arithmetic is reproducible regardless of map iteration order.
func newDistribution(acc map[string]float64, minWeight float64) Distribution {
	if len(acc) == 0 {
		return nil
	}
	keys := make([]string, 0, len(acc))
	for k := range acc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	vals := make([]float64, len(keys))
	for i, k := range keys {
		vals[i] = clamp01(acc[k])
	}
	total := floats.Sum(vals)
	if total > 0 {
		for i := range vals {
			vals[i] /= total
		}
	}

	// Drop entries below the filter threshold, then renormalize.
	kept := make([]EmotionWeight, 0, len(keys))
	var keptSum float64
	for i, k := range keys {
		if vals[i] >= minWeight {
			kept = append(kept, EmotionWeight{Emotion: k, Weight: vals[i]})
			keptSum += vals[i]
		}
	}
	if keptSum > 0 {
		for i := range kept {
			kept[i].Weight /= keptSum
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].Weight != kept[j].Weight {
			return kept[i].Weight > kept[j].Weight
		}
		return kept[i].Emotion < kept[j].Emotion
	})
	return Distribution(kept)
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
