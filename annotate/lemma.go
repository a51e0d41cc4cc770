package annotate

import "strings"

// Rule-based English lemmatizer. Covers the sentiment vocabulary and
// common inflections; it is not a general-purpose morphological
// analyzer.

var irregularLemmas = map[string]string{
	"am": "be", "is": "be", "are": "be", "was": "be", "were": "be",
	"been": "be", "being": "be",
	"has": "have", "had": "have", "having": "have",
	"does": "do", "did": "do", "doing": "do", "done": "do",
	"went": "go", "gone": "go", "goes": "go", "going": "go",
	"better": "good", "best": "best",
	"worse": "bad", "worst": "worst",
	"felt": "feel", "made": "make", "said": "say", "got": "get",
	"gotten": "get", "saw": "see", "seen": "see", "took": "take",
	"taken": "take", "gave": "give", "given": "give",
	"fought": "fight", "died": "die", "dying": "die", "dies": "die",
	"loving": "love", "hating": "hate", "liking": "like",
	"n't": "not", "'m": "be", "'re": "be", "'s": "be", "'ve": "have",
	"'ll": "will", "'d": "would",
	// participial adjectives kept whole, matching the lexicon
	"amazing": "amazing", "boring": "boring", "annoying": "annoying",
	"disappointing": "disappointing", "disgusting": "disgusting",
	"interesting": "interesting", "charming": "charming",
	// function words the suffix rules would mangle
	"this": "this", "thus": "thus", "during": "during",
	"nothing": "nothing", "something": "something",
	"anything": "anything", "everything": "everything",
	"thing": "thing", "always": "always", "perhaps": "perhaps",
}

var vowels = "aeiou"

// Lemma returns the base form of a lowercased word.
func Lemma(word string) string {
	if lemma, ok := irregularLemmas[word]; ok {
		return lemma
	}
	if len(word) <= 3 {
		return word
	}

	switch {
	case strings.HasSuffix(word, "ies") && len(word) > 4:
		return word[:len(word)-3] + "y"
	case strings.HasSuffix(word, "ing") && len(word) > 5:
		return restoreStem(word[:len(word)-3])
	case strings.HasSuffix(word, "ied"):
		return word[:len(word)-3] + "y"
	case strings.HasSuffix(word, "ed") && len(word) > 4:
		return restoreStem(word[:len(word)-2])
	case strings.HasSuffix(word, "es") && len(word) > 4 && esTakesE(word):
		return word[:len(word)-2]
	case strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss") && !strings.HasSuffix(word, "us"):
		return word[:len(word)-1]
	}
	return word
}

// esTakesE reports whether the -es suffix was added for pronunciation
// (boxes, wishes, kisses) rather than being a plain -s plural (likes).
func esTakesE(word string) bool {
	stem := word[:len(word)-2]
	return strings.HasSuffix(stem, "s") || strings.HasSuffix(stem, "x") ||
		strings.HasSuffix(stem, "z") || strings.HasSuffix(stem, "ch") ||
		strings.HasSuffix(stem, "sh")
}

// restoreStem repairs stems produced by stripping -ing/-ed:
// doubled final consonants are collapsed (running -> run) and a
// trailing silent e is restored after consonant+vowel+consonant
// patterns that need it (hated -> hate, loved -> love).
func restoreStem(stem string) string {
	n := len(stem)
	if n >= 2 && stem[n-1] == stem[n-2] && !isVowel(stem[n-1]) && stem[n-1] != 'l' && stem[n-1] != 's' {
		return stem[:n-1]
	}
	if n >= 3 && !isVowel(stem[n-1]) && isVowel(stem[n-2]) && !isVowel(stem[n-3]) &&
		stem[n-1] != 'w' && stem[n-1] != 'x' && stem[n-1] != 'y' {
		return stem + "e"
	}
	return stem
}

func isVowel(c byte) bool {
	return strings.IndexByte(vowels, c) >= 0
}
