// Package annotate wraps an external NLP annotator behind a small
// interface. The rest of the system only ever sees the token sequence
// and document-level spans defined here.
package annotate

import "errors"

// ErrUnavailable is returned when no annotator backend can process
// text. Callers are expected to degrade to neutral analysis rather
// than abort.
var ErrUnavailable = errors.New("annotator unavailable")

// Coarse part-of-speech categories exposed to downstream components.
const (
	POSNoun  = "NOUN"
	POSVerb  = "VERB"
	POSAdj   = "ADJ"
	POSAdv   = "ADV"
	POSPron  = "PRON"
	POSPunct = "PUNCT"
	POSOther = "X"
)

// Token is a single annotated token in document order.
type Token struct {
	Text    string // surface form
	Lemma   string // lowercased base form
	POS     string // coarse part-of-speech
	IsStop  bool   // stop-word flag
	IsPunct bool   // punctuation or whitespace token
}

// Entity is a named-entity span.
type Entity struct {
	Text  string
	Label string
}

// Doc is the annotated view of one input text.
type Doc struct {
	Tokens        []Token
	Entities      []Entity
	NounPhrases   []string
	SentenceCount int
}

// Annotator turns raw text into an annotated Doc.
type Annotator interface {
	Annotate(text string) (*Doc, error)
}
