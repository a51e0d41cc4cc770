package emotioncalc

import (
	"encoding/json"
	"math"
	"testing"
)

// ══════════════════════════════════════════════
// Distribution tests
// ══════════════════════════════════════════════

func TestNewDistributionNormalizes(t *testing.T) {
	acc := map[string]float64{Happy: 0.8, Sad: 0.4, Curious: 0.4}
	d := newDistribution(acc, 0.06)
	if math.Abs(d.Sum()-1.0) > 1e-6 {
		t.Fatalf("sum = %v, want 1.0", d.Sum())
	}
	if d.Dominant() != Happy {
		t.Fatalf("dominant = %s, want Happy", d.Dominant())
	}
}

func TestNewDistributionFilters(t *testing.T) {
	acc := map[string]float64{Happy: 1.0, Sad: 0.01}
	d := newDistribution(acc, 0.06)
	if _, ok := d.Get(Sad); ok {
		t.Fatal("entry below threshold survived filtering")
	}
	for _, ew := range d {
		if ew.Weight < 0.06 {
			t.Fatalf("retained weight %v below threshold", ew.Weight)
		}
	}
}

func TestNewDistributionFilterIdempotent(t *testing.T) {
	acc := map[string]float64{Happy: 0.5, Sad: 0.3, Angry: 0.15, Curious: 0.05}
	first := newDistribution(acc, 0.06)

	// Re-filtering an already filtered distribution changes nothing.
	second := newDistribution(first.Map(), 0.06)
	if len(first) != len(second) {
		t.Fatalf("second pass changed entry count: %d -> %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Emotion != second[i].Emotion {
			t.Fatalf("second pass changed ranking at %d: %s -> %s", i, first[i].Emotion, second[i].Emotion)
		}
		if math.Abs(first[i].Weight-second[i].Weight) > 1e-9 {
			t.Fatalf("second pass changed weight of %s: %v -> %v", first[i].Emotion, first[i].Weight, second[i].Weight)
		}
	}
}

func TestNewDistributionDeterministicTieBreak(t *testing.T) {
	acc := map[string]float64{Surprised: 0.5, Afraid: 0.5}
	d := newDistribution(acc, 0.06)
	if d[0].Emotion != Afraid || d[1].Emotion != Surprised {
		t.Fatalf("equal weights not ordered by name: %v", d)
	}
}

func TestNewDistributionClampsNegative(t *testing.T) {
	acc := map[string]float64{Happy: -0.5, Sad: 0.5}
	d := newDistribution(acc, 0.06)
	if _, ok := d.Get(Happy); ok {
		t.Fatal("negative accumulator value should clamp to zero and filter out")
	}
}

func TestDistributionJSONRoundTrip(t *testing.T) {
	d := Distribution{
		{Emotion: Afraid, Weight: 0.5},
		{Emotion: Angry, Weight: 0.3},
		{Emotion: Nervous, Weight: 0.2},
	}
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back Distribution
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(back) != 3 {
		t.Fatalf("round trip lost entries: %v", back)
	}
	// Key order is the ranking and must survive the round trip.
	for i := range d {
		if back[i].Emotion != d[i].Emotion {
			t.Fatalf("order changed at %d: %s -> %s", i, d[i].Emotion, back[i].Emotion)
		}
	}
}

func TestDistributionRank(t *testing.T) {
	d := Distribution{
		{Emotion: Happy, Weight: 0.6},
		{Emotion: Curious, Weight: 0.4},
	}
	if d.Rank(Happy) != 0 || d.Rank(Curious) != 1 || d.Rank(Sad) != -1 {
		t.Fatalf("unexpected ranks: %d %d %d", d.Rank(Happy), d.Rank(Curious), d.Rank(Sad))
	}
}

func TestIsEmotion(t *testing.T) {
	if !IsEmotion(Amused) {
		t.Fatal("Amused should be a known emotion")
	}
	if IsEmotion("Melancholy") {
		t.Fatal("Melancholy is not in the fixed set")
	}
}
