package store

import emotioncalc "github.com/affectkit/emotioncalc-go"

// MemoryStore is an in-memory InteractionStore for development and
// tests. Data is lost on restart.
type MemoryStore struct {
	history []emotioncalc.Interaction
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() ([]emotioncalc.Interaction, error) {
	out := make([]emotioncalc.Interaction, len(s.history))
	copy(out, s.history)
	return out, nil
}

func (s *MemoryStore) Save(history []emotioncalc.Interaction) error {
	s.history = make([]emotioncalc.Interaction, len(history))
	copy(s.history, history)
	return nil
}
