package emotioncalc

import (
	"strings"

	"github.com/affectkit/emotioncalc-go/annotate"
)

// LinguisticFeatures is the read-only feature view of one input,
// produced once and consumed by the composer.
type LinguisticFeatures struct {
	Entities      []annotate.Entity `json:"entities"`
	NounPhrases   []string          `json:"noun_phrases"`
	KeyWords      []string          `json:"key_words"`
	WordCount     int               `json:"word_count"`
	SentenceCount int               `json:"sentence_count"`
	IsQuestion    bool              `json:"is_question"`
	IsImperative  bool              `json:"is_imperative"`
	IsExclamatory bool              `json:"is_exclamatory"`
}

// ExtractFeatures derives LinguisticFeatures from an annotated doc.
// Key words are the content words: verbs, nouns and adjectives that
// are not stop words.
func ExtractFeatures(doc *annotate.Doc) LinguisticFeatures {
	f := LinguisticFeatures{
		Entities:      doc.Entities,
		NounPhrases:   doc.NounPhrases,
		SentenceCount: doc.SentenceCount,
	}

	firstWord := -1
	for i, tok := range doc.Tokens {
		if tok.IsPunct {
			if tok.Text == "?" {
				f.IsQuestion = true
			}
			if tok.Text == "!" {
				f.IsExclamatory = true
			}
			continue
		}
		if firstWord < 0 {
			firstWord = i
		}
		f.WordCount++
		switch tok.POS {
		case annotate.POSVerb, annotate.POSNoun, annotate.POSAdj:
			if !tok.IsStop {
				f.KeyWords = append(f.KeyWords, strings.ToLower(tok.Text))
			}
		}
	}

	// A sentence opening on a base-form verb with no question mark
	// reads as a command.
	if firstWord >= 0 && !f.IsQuestion {
		lead := doc.Tokens[firstWord]
		if lead.POS == annotate.POSVerb && strings.ToLower(lead.Text) == lead.Lemma {
			f.IsImperative = true
		}
	}
	return f
}
