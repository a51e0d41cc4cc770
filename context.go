package emotioncalc

import "strings"

// ──────────────────────────────────────────────
// Context Classifier — relationship inference
// ──────────────────────────────────────────────

// ContextType is the inferred relationship category.
type ContextType string

const (
	ContextFriend  ContextType = "friend"
	ContextEnemy   ContextType = "enemy"
	ContextNeutral ContextType = "neutral"
	ContextUnknown ContextType = "unknown"
)

// Context is the relationship context for one request. Derived once,
// never mutated afterwards.
type Context struct {
	Type                 ContextType `json:"type"`
	Confidence           float64     `json:"confidence"`
	KnownPerson          bool        `json:"known_person,omitempty"`
	RelationshipDuration string      `json:"relationship_duration,omitempty"`
}

// Metadata carries optional caller-supplied facts about the speaker.
// They are copied into the Context unconditionally.
type Metadata struct {
	KnownPerson          bool
	RelationshipDuration string
}

// HistoryEntry is one prior exchange supplied by the caller for
// history-based classification.
type HistoryEntry struct {
	Text      string         `json:"text"`
	Sentiment SentimentScore `json:"sentiment"`
}

// relationshipSynonyms maps caller-supplied relationship labels to a
// context type and confidence.
var relationshipSynonyms = map[string]struct {
	ctx  ContextType
	conf float64
}{
	"friend": {ContextFriend, 0.9}, "ally": {ContextFriend, 0.9},
	"friendly": {ContextFriend, 0.9}, "positive": {ContextFriend, 0.9},
	"enemy": {ContextEnemy, 0.9}, "hostile": {ContextEnemy, 0.9},
	"negative": {ContextEnemy, 0.9}, "adversary": {ContextEnemy, 0.9},
	"neutral": {ContextNeutral, 0.8}, "stranger": {ContextNeutral, 0.8},
	"acquaintance": {ContextNeutral, 0.8},
}

// ClassifyContext determines the relationship context. An explicit
// relationship label wins; otherwise sentiment signals in the supplied
// history are tallied; metadata flags pass through either way.
func ClassifyContext(relationship string, history []HistoryEntry, meta *Metadata) Context {
	ctx := Context{Type: ContextUnknown, Confidence: 0.5}

	if relationship != "" {
		if m, ok := relationshipSynonyms[strings.ToLower(relationship)]; ok {
			ctx.Type = m.ctx
			ctx.Confidence = m.conf
		}
	}

	if ctx.Type == ContextUnknown && len(history) > 0 {
		friendly := 0
		hostile := 0
		for _, entry := range history {
			if entry.Sentiment.Positive > 0.6 {
				friendly++
			}
			if entry.Sentiment.Negative > 0.6 {
				hostile++
			}
			if entry.Sentiment.Hostility > 0.3 {
				hostile += 2 // hostility weighs double
			}
		}
		switch {
		case friendly > hostile*2:
			ctx.Type = ContextFriend
			ctx.Confidence = 0.7
		case hostile > friendly:
			ctx.Type = ContextEnemy
			ctx.Confidence = 0.7
		default:
			ctx.Type = ContextNeutral
			ctx.Confidence = 0.6
		}
	}

	if meta != nil {
		ctx.KnownPerson = meta.KnownPerson
		ctx.RelationshipDuration = meta.RelationshipDuration
	}
	return ctx
}
