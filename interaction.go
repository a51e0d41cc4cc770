package emotioncalc

import "time"

// Interaction is one persisted exchange: the input, the emotions it
// produced, the context it ran under, and any caller feedback.
type Interaction struct {
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	InputText string             `json:"input_text"`
	Emotions  Distribution       `json:"emotions"`
	Context   string             `json:"context"`
	Feedback  map[string]float64 `json:"feedback,omitempty"`
}

// InteractionStore is the pluggable persistence backend for the
// learner. Load returns the full ordered history; Save rewrites it in
// full. Implementations treat malformed or missing content as an empty
// store, never as a fatal error.
//
// The read-modify-write contract is not safe under concurrent writers;
// the design assumes a single active learner per persisted store.
type InteractionStore interface {
	Load() ([]Interaction, error)
	Save(history []Interaction) error
}
