package annotate

import (
	"strings"
	"unicode"

	"github.com/bbalet/stopwords"
	prose "github.com/tsawler/prose/v3"
)

// Prose is the production Annotator, backed by the prose NLP library
// (tokenization, Penn-Treebank POS tagging, named-entity extraction,
// sentence segmentation).
type Prose struct{}

// NewProse returns a prose-backed annotator.
func NewProse() *Prose {
	return &Prose{}
}

// Annotate runs the full prose pipeline over text.
func (p *Prose) Annotate(text string) (*Doc, error) {
	if p == nil {
		return nil, ErrUnavailable
	}
	pdoc, err := prose.NewDocument(text)
	if err != nil {
		return nil, ErrUnavailable
	}

	ptoks := pdoc.Tokens()
	doc := &Doc{
		Tokens:        make([]Token, 0, len(ptoks)),
		SentenceCount: len(pdoc.Sentences()),
	}
	for _, pt := range ptoks {
		tok := Token{
			Text:    pt.Text,
			POS:     coarsePOS(pt.Tag, pt.Text),
			IsPunct: isPunctToken(pt.Text),
		}
		tok.Lemma = Lemma(strings.ToLower(pt.Text))
		tok.IsStop = !tok.IsPunct && isStopWord(tok.Lemma)
		doc.Tokens = append(doc.Tokens, tok)
	}
	for _, ent := range pdoc.Entities() {
		doc.Entities = append(doc.Entities, Entity{Text: ent.Text, Label: ent.Label})
	}
	doc.NounPhrases = nounPhrases(ptoks)
	return doc, nil
}

// coarsePOS collapses Penn-Treebank tags into the coarse categories
// the scorer and composer care about.
func coarsePOS(tag, text string) string {
	if isPunctToken(text) {
		return POSPunct
	}
	switch {
	case strings.HasPrefix(tag, "NN"):
		return POSNoun
	case strings.HasPrefix(tag, "VB"), tag == "MD":
		return POSVerb
	case strings.HasPrefix(tag, "JJ"):
		return POSAdj
	case strings.HasPrefix(tag, "RB"), tag == "WRB":
		return POSAdv
	case strings.HasPrefix(tag, "PRP"), strings.HasPrefix(tag, "WP"):
		return POSPron
	default:
		return POSOther
	}
}

func isPunctToken(text string) bool {
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return len(text) > 0
}

// isStopWord checks a word against the stopwords corpus: a word is a
// stop word when cleaning removes it entirely.
func isStopWord(word string) bool {
	if word == "" {
		return false
	}
	cleaned := stopwords.CleanString(word, "en", false)
	return strings.TrimSpace(cleaned) == ""
}

// nounPhrases derives flat noun chunks from POS runs: an optional
// determiner, any adjectives, then one or more nouns. The backing
// library exposes no chunker, so this stays deliberately simple.
func nounPhrases(toks []prose.Token) []string {
	var phrases []string
	var current []string
	sawNoun := false

	flush := func() {
		if sawNoun && len(current) > 0 {
			phrases = append(phrases, strings.Join(current, " "))
		}
		current = nil
		sawNoun = false
	}

	for _, t := range toks {
		switch {
		case strings.HasPrefix(t.Tag, "NN"):
			current = append(current, t.Text)
			sawNoun = true
		case t.Tag == "DT" && len(current) == 0:
			current = append(current, t.Text)
		case strings.HasPrefix(t.Tag, "JJ") && !sawNoun:
			current = append(current, t.Text)
		default:
			flush()
		}
	}
	flush()
	return phrases
}
