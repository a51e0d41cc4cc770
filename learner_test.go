package emotioncalc

import (
	"fmt"
	"testing"
)

// ══════════════════════════════════════════════
// Adaptive Learner tests
// ══════════════════════════════════════════════

// stubStore is a minimal in-memory InteractionStore for learner tests.
type stubStore struct {
	history  []Interaction
	saves    int
	loadErr  error
	saveErr  error
}

func (s *stubStore) Load() ([]Interaction, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	out := make([]Interaction, len(s.history))
	copy(out, s.history)
	return out, nil
}

func (s *stubStore) Save(history []Interaction) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.history = make([]Interaction, len(history))
	copy(s.history, history)
	s.saves++
	return nil
}

func happyDistribution() Distribution {
	return Distribution{
		{Emotion: Happy, Weight: 0.7},
		{Emotion: Excited, Weight: 0.3},
	}
}

func TestAdjustEmptyHistoryIsNoOp(t *testing.T) {
	learner, err := NewLearner(&stubStore{})
	if err != nil {
		t.Fatalf("NewLearner: %v", err)
	}
	base := happyDistribution()
	out := learner.Adjust("hello there", "friend", base)
	if len(out) != len(base) {
		t.Fatalf("empty-history adjust changed the distribution: %v", out)
	}
	for i := range base {
		if out[i] != base[i] {
			t.Fatalf("empty-history adjust changed entry %d: %v vs %v", i, out[i], base[i])
		}
	}
}

func TestLearningFactorMonotoneAndCapped(t *testing.T) {
	learner, err := NewLearner(&stubStore{})
	if err != nil {
		t.Fatalf("NewLearner: %v", err)
	}
	prev := learner.LearningFactor()
	if prev != 0 {
		t.Fatalf("empty-history factor = %v, want 0", prev)
	}
	for i := 0; i < 50; i++ {
		if err := learner.RecordInteraction(fmt.Sprintf("message %d", i), happyDistribution(), "friend", nil); err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
		f := learner.LearningFactor()
		if f < prev {
			t.Fatalf("factor decreased: %v -> %v at %d records", prev, f, i+1)
		}
		if f > 0.3 {
			t.Fatalf("factor %v exceeds 0.3", f)
		}
		prev = f
	}
	if prev != 0.3 {
		t.Fatalf("factor at 50 records = %v, want 0.3", prev)
	}
}

func TestAdjustPullsTowardLearnedAssociation(t *testing.T) {
	learner, err := NewLearner(&stubStore{})
	if err != nil {
		t.Fatalf("NewLearner: %v", err)
	}
	sadDist := Distribution{{Emotion: Sad, Weight: 1.0}}
	for i := 0; i < 30; i++ {
		if err := learner.RecordInteraction("rainy monday blues", sadDist, "friend", nil); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	base := happyDistribution()
	out := learner.Adjust("rainy monday blues", "friend", base)

	sadWeight, _ := out.Get(Sad)
	if sadWeight <= 0 {
		t.Fatalf("learned Sad association had no effect: %v", out)
	}
	happyBefore, _ := base.Get(Happy)
	happyAfter, _ := out.Get(Happy)
	if happyAfter >= happyBefore {
		t.Fatalf("Happy not pulled down by learned pattern: %v -> %v", happyBefore, happyAfter)
	}
}

func TestRecordInteractionCapsHistory(t *testing.T) {
	st := &stubStore{}
	learner, err := NewLearner(st)
	if err != nil {
		t.Fatalf("NewLearner: %v", err)
	}
	for i := 0; i < maxHistorySize+1; i++ {
		if err := learner.RecordInteraction(fmt.Sprintf("message %d", i), happyDistribution(), "neutral", nil); err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}
	if learner.HistorySize() != maxHistorySize {
		t.Fatalf("history size = %d, want %d", learner.HistorySize(), maxHistorySize)
	}
	if st.history[0].InputText != "message 1" {
		t.Fatalf("oldest record not evicted first: %q", st.history[0].InputText)
	}
	if st.history[len(st.history)-1].InputText != fmt.Sprintf("message %d", maxHistorySize) {
		t.Fatalf("newest record missing: %q", st.history[len(st.history)-1].InputText)
	}
}

func TestRecordInteractionPersists(t *testing.T) {
	st := &stubStore{}
	learner, err := NewLearner(st)
	if err != nil {
		t.Fatalf("NewLearner: %v", err)
	}
	if err := learner.RecordInteraction("hello", happyDistribution(), "friend", nil); err != nil {
		t.Fatalf("record: %v", err)
	}
	if st.saves != 1 {
		t.Fatalf("saves = %d, want 1", st.saves)
	}
	if st.history[0].ID == "" {
		t.Fatal("interaction missing ID")
	}
	if st.history[0].Timestamp.IsZero() {
		t.Fatal("interaction missing timestamp")
	}
}

func TestFindSimilarExactMatchFirst(t *testing.T) {
	learner, err := NewLearner(&stubStore{})
	if err != nil {
		t.Fatalf("NewLearner: %v", err)
	}
	texts := []string{
		"how are you today",
		"what a lovely day today",
		"how are you",
	}
	for _, txt := range texts {
		if err := learner.RecordInteraction(txt, happyDistribution(), "friend", nil); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	similar := learner.FindSimilar("how are you", "friend", 3)
	if len(similar) == 0 {
		t.Fatal("no similar interactions found")
	}
	if similar[0].InputText != "how are you" {
		t.Fatalf("exact match not ranked first: %q", similar[0].InputText)
	}
}

func TestFindSimilarFiltersContext(t *testing.T) {
	learner, err := NewLearner(&stubStore{})
	if err != nil {
		t.Fatalf("NewLearner: %v", err)
	}
	if err := learner.RecordInteraction("see you soon", happyDistribution(), "friend", nil); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := learner.RecordInteraction("see you soon", happyDistribution(), "enemy", nil); err != nil {
		t.Fatalf("record: %v", err)
	}

	similar := learner.FindSimilar("see you soon", "enemy", 5)
	for _, s := range similar {
		if s.Context != "enemy" {
			t.Fatalf("similar result from wrong context: %+v", s)
		}
	}
	if len(similar) != 1 {
		t.Fatalf("got %d results, want 1", len(similar))
	}
}

func TestFindSimilarDiscardsNoOverlap(t *testing.T) {
	learner, err := NewLearner(&stubStore{})
	if err != nil {
		t.Fatalf("NewLearner: %v", err)
	}
	if err := learner.RecordInteraction("completely unrelated words", happyDistribution(), "friend", nil); err != nil {
		t.Fatalf("record: %v", err)
	}
	similar := learner.FindSimilar("nothing matches here", "friend", 5)
	if len(similar) != 0 {
		t.Fatalf("zero-overlap candidate returned: %v", similar)
	}
}

func TestFindSimilarLimit(t *testing.T) {
	learner, err := NewLearner(&stubStore{})
	if err != nil {
		t.Fatalf("NewLearner: %v", err)
	}
	for i := 0; i < 5; i++ {
		if err := learner.RecordInteraction(fmt.Sprintf("good morning friend %d", i), happyDistribution(), "friend", nil); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	similar := learner.FindSimilar("good morning", "friend", 2)
	if len(similar) != 2 {
		t.Fatalf("limit not applied: got %d", len(similar))
	}
}

func TestProvideFeedback(t *testing.T) {
	st := &stubStore{}
	learner, err := NewLearner(st)
	if err != nil {
		t.Fatalf("NewLearner: %v", err)
	}
	if err := learner.RecordInteraction("hello", happyDistribution(), "friend", nil); err != nil {
		t.Fatalf("record: %v", err)
	}
	id := st.history[0].ID

	if err := learner.ProvideFeedback(id, map[string]float64{Happy: 0.5, Surprised: 0.5}); err != nil {
		t.Fatalf("ProvideFeedback: %v", err)
	}
	if st.history[0].Feedback[Happy] != 0.5 {
		t.Fatalf("feedback not persisted: %+v", st.history[0].Feedback)
	}
}

func TestProvideFeedbackRejectsMalformed(t *testing.T) {
	learner, err := NewLearner(&stubStore{})
	if err != nil {
		t.Fatalf("NewLearner: %v", err)
	}
	if err := learner.ProvideFeedback("x", nil); err == nil {
		t.Fatal("empty feedback accepted")
	}
	if err := learner.ProvideFeedback("x", map[string]float64{"NotAnEmotion": 1}); err == nil {
		t.Fatal("unknown emotion accepted")
	}
	if err := learner.ProvideFeedback("x", map[string]float64{Happy: 1.5}); err == nil {
		t.Fatal("out-of-range weight accepted")
	}
	if err := learner.ProvideFeedback("missing-id", map[string]float64{Happy: 1}); err == nil {
		t.Fatal("unknown interaction accepted")
	}
}

func TestLearnerRecoversFromLoadError(t *testing.T) {
	learner, err := NewLearner(&stubStore{loadErr: fmt.Errorf("disk on fire")})
	if err != nil {
		t.Fatalf("load error should not be fatal: %v", err)
	}
	if learner.HistorySize() != 0 {
		t.Fatalf("history size = %d, want 0", learner.HistorySize())
	}
}
