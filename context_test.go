package emotioncalc

import "testing"

// ══════════════════════════════════════════════
// Context Classifier tests
// ══════════════════════════════════════════════

func TestClassifyExplicitRelationship(t *testing.T) {
	cases := []struct {
		relationship string
		wantType     ContextType
		wantConf     float64
	}{
		{"friend", ContextFriend, 0.9},
		{"ally", ContextFriend, 0.9},
		{"Friendly", ContextFriend, 0.9},
		{"enemy", ContextEnemy, 0.9},
		{"adversary", ContextEnemy, 0.9},
		{"neutral", ContextNeutral, 0.8},
		{"stranger", ContextNeutral, 0.8},
		{"cousin", ContextUnknown, 0.5},
	}
	for _, tc := range cases {
		ctx := ClassifyContext(tc.relationship, nil, nil)
		if ctx.Type != tc.wantType {
			t.Fatalf("%q: type = %s, want %s", tc.relationship, ctx.Type, tc.wantType)
		}
		if ctx.Confidence != tc.wantConf {
			t.Fatalf("%q: confidence = %v, want %v", tc.relationship, ctx.Confidence, tc.wantConf)
		}
	}
}

func TestClassifyNoSignals(t *testing.T) {
	ctx := ClassifyContext("", nil, nil)
	if ctx.Type != ContextUnknown || ctx.Confidence != 0.5 {
		t.Fatalf("no-signal context = %+v, want unknown/0.5", ctx)
	}
}

func TestClassifyFriendlyHistory(t *testing.T) {
	history := []HistoryEntry{
		{Sentiment: SentimentScore{Positive: 0.8}},
		{Sentiment: SentimentScore{Positive: 0.7}},
		{Sentiment: SentimentScore{Positive: 0.9}},
	}
	ctx := ClassifyContext("", history, nil)
	if ctx.Type != ContextFriend || ctx.Confidence != 0.7 {
		t.Fatalf("friendly history = %+v, want friend/0.7", ctx)
	}
}

func TestClassifyHostileHistory(t *testing.T) {
	history := []HistoryEntry{
		{Sentiment: SentimentScore{Negative: 0.8}},
		{Sentiment: SentimentScore{Hostility: 0.5}},
	}
	ctx := ClassifyContext("", history, nil)
	if ctx.Type != ContextEnemy || ctx.Confidence != 0.7 {
		t.Fatalf("hostile history = %+v, want enemy/0.7", ctx)
	}
}

func TestClassifyHostilityCountsDouble(t *testing.T) {
	// Two friendly entries against one hostility entry: hostility
	// counting double keeps this from classifying as friend.
	history := []HistoryEntry{
		{Sentiment: SentimentScore{Positive: 0.8}},
		{Sentiment: SentimentScore{Positive: 0.7}},
		{Sentiment: SentimentScore{Hostility: 0.4}},
	}
	ctx := ClassifyContext("", history, nil)
	if ctx.Type == ContextFriend {
		t.Fatalf("hostility double-count ignored: %+v", ctx)
	}
}

func TestClassifyMixedHistoryNeutral(t *testing.T) {
	history := []HistoryEntry{
		{Sentiment: SentimentScore{Positive: 0.7}},
		{Sentiment: SentimentScore{Negative: 0.7}},
	}
	ctx := ClassifyContext("", history, nil)
	if ctx.Type != ContextNeutral || ctx.Confidence != 0.6 {
		t.Fatalf("mixed history = %+v, want neutral/0.6", ctx)
	}
}

func TestClassifyExplicitWinsOverHistory(t *testing.T) {
	history := []HistoryEntry{
		{Sentiment: SentimentScore{Hostility: 0.9}},
	}
	ctx := ClassifyContext("friend", history, nil)
	if ctx.Type != ContextFriend {
		t.Fatalf("explicit relationship lost to history: %+v", ctx)
	}
}

func TestClassifyMetadataPassthrough(t *testing.T) {
	meta := &Metadata{KnownPerson: true, RelationshipDuration: "5 years"}
	ctx := ClassifyContext("enemy", nil, meta)
	if !ctx.KnownPerson || ctx.RelationshipDuration != "5 years" {
		t.Fatalf("metadata not copied: %+v", ctx)
	}

	// Metadata passes through on the history branch too.
	ctx = ClassifyContext("", []HistoryEntry{{Sentiment: SentimentScore{Positive: 0.9}}}, meta)
	if !ctx.KnownPerson {
		t.Fatalf("metadata not copied on history branch: %+v", ctx)
	}
}
