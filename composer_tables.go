package emotioncalc

// ──────────────────────────────────────────────
// Emotion Composer — configuration tables
// ──────────────────────────────────────────────
//
// All tables are immutable configuration: built once, passed into the
// composer by reference, never mutated at runtime.

// PhraseTrigger adds a fixed contribution when a literal phrase occurs
// in the lowercased input. OnlyContext, when set, restricts the trigger
// to one context type.
type PhraseTrigger struct {
	Phrase      string
	Emotion     string
	Intensity   float64
	OnlyContext ContextType // "" = any context
}

// KeywordEffect is the effect of one content key word: either a fixed
// list of additions, or per-context alternatives with a default.
type KeywordEffect struct {
	Fixed     []EmotionWeight              // used when ByContext is nil
	ByContext map[ContextType][]EmotionWeight
	Default   []EmotionWeight // fallback when ByContext has no row
}

// resolve returns the addition list for a context type.
func (e KeywordEffect) resolve(ctx ContextType) []EmotionWeight {
	if e.ByContext == nil {
		return e.Fixed
	}
	if list, ok := e.ByContext[ctx]; ok {
		return list
	}
	return e.Default
}

// ComposerTables bundles every table the composer consults.
type ComposerTables struct {
	PhraseTriggers  []PhraseTrigger
	PatternTriggers map[string][]string // emotion -> substrings
	Keywords        map[string]KeywordEffect
	ContextWeights  map[ContextType]map[string]float64
}

// DefaultComposerTables returns the built-in English tables.
func DefaultComposerTables() *ComposerTables {
	return &ComposerTables{
		PhraseTriggers: []PhraseTrigger{
			{Phrase: "thank you", Emotion: Grateful, Intensity: 0.5},
			{Phrase: "thanks", Emotion: Grateful, Intensity: 0.4},
			{Phrase: "love you", Emotion: Loving, Intensity: 0.6},
			{Phrase: "miss you", Emotion: Loving, Intensity: 0.4},
			{Phrase: "well done", Emotion: Proud, Intensity: 0.4},
			{Phrase: "good job", Emotion: Proud, Intensity: 0.4},
			{Phrase: "i'm sorry", Emotion: Sad, Intensity: 0.3},
			{Phrase: "just kidding", Emotion: Amused, Intensity: 0.5, OnlyContext: ContextFriend},
			{Phrase: "messing with you", Emotion: Amused, Intensity: 0.4, OnlyContext: ContextFriend},
			{Phrase: "watch your back", Emotion: Afraid, Intensity: 0.5, OnlyContext: ContextEnemy},
			{Phrase: "you'll regret", Emotion: Nervous, Intensity: 0.4, OnlyContext: ContextEnemy},
		},
		PatternTriggers: map[string][]string{
			Grateful: {"thank", "appreciat", "grateful"},
			Amused:   {"haha", "lol", "hilarious", "funny"},
			Confused: {"confus", "makes no sense", "don't understand"},
			Nervous:  {"nervous", "worried", "anxious"},
			Afraid:   {"terrified", "scared", "frightened"},
			Proud:    {"proud"},
			Curious:  {"wonder", "curious"},
			Loving:   {"adore", "cherish"},
		},
		Keywords: map[string]KeywordEffect{
			"love": {Fixed: []EmotionWeight{{Loving, 0.3}, {Happy, 0.2}}},
			"hate": {Fixed: []EmotionWeight{{Angry, 0.3}, {Disgusted, 0.1}}},
			"kill": {
				ByContext: map[ContextType][]EmotionWeight{
					ContextFriend: {{Surprised, 0.3}, {Confused, 0.2}, {Amused, 0.2}},
				},
				Default: []EmotionWeight{{Afraid, 0.4}, {Angry, 0.2}},
			},
			"hurt": {
				ByContext: map[ContextType][]EmotionWeight{
					ContextFriend: {{Surprised, 0.2}, {Confused, 0.2}},
				},
				Default: []EmotionWeight{{Afraid, 0.3}, {Sad, 0.2}},
			},
			"die":      {Fixed: []EmotionWeight{{Sad, 0.3}, {Afraid, 0.2}}},
			"amazing":  {Fixed: []EmotionWeight{{Excited, 0.3}, {Happy, 0.2}}},
			"terrible": {Fixed: []EmotionWeight{{Disgusted, 0.3}, {Sad, 0.1}}},
			"surprise": {Fixed: []EmotionWeight{{Surprised, 0.4}}},
			"sorry":    {Fixed: []EmotionWeight{{Sad, 0.2}}},
			"wow":      {Fixed: []EmotionWeight{{Surprised, 0.3}, {Excited, 0.1}}},
			"help":     {Fixed: []EmotionWeight{{Curious, 0.2}, {Nervous, 0.1}}},
		},
		ContextWeights: map[ContextType]map[string]float64{
			ContextFriend: {
				Happy: 1.3, Excited: 1.2, Amused: 1.3, Loving: 1.2,
				Afraid: 0.7, Angry: 0.8,
			},
			ContextEnemy: {
				Afraid: 1.4, Angry: 1.3, Disgusted: 1.2,
				Happy: 0.7, Loving: 0.5, Calm: 0.8,
			},
			ContextNeutral: {
				Curious: 1.2, Confused: 1.1, Nervous: 1.1,
			},
		},
	}
}

// Sentiment-to-emotion distribution coefficients.
var positiveRouting = []EmotionWeight{
	{Happy, 0.35}, {Excited, 0.2}, {Calm, 0.15},
	{Loving, 0.1}, {Proud, 0.1}, {Grateful, 0.1},
}

var negativeRouting = []EmotionWeight{
	{Sad, 0.35}, {Angry, 0.3}, {Disgusted, 0.2}, {Nervous, 0.15},
}

var hostilityFriendRouting = []EmotionWeight{
	{Surprised, 0.4}, {Curious, 0.25}, {Excited, 0.15}, {Amused, 0.2},
}

var hostilityEnemyRouting = []EmotionWeight{
	{Afraid, 0.5}, {Angry, 0.3}, {Disgusted, 0.2},
}

var hostilityOtherRouting = []EmotionWeight{
	{Surprised, 0.3}, {Afraid, 0.3}, {Curious, 0.2}, {Confused, 0.1},
}
