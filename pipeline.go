package emotioncalc

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/atomic"

	"github.com/affectkit/emotioncalc-go/annotate"
)

// ──────────────────────────────────────────────
// Pipeline Orchestrator
// ──────────────────────────────────────────────

// ErrAnnotatorUnavailable is the error string surfaced in a Response
// when no annotator backend can run.
const ErrAnnotatorUnavailable = "annotator unavailable"

// ProcessOptions are the per-request knobs for Process.
type ProcessOptions struct {
	Relationship    string
	History         []HistoryEntry
	Metadata        *Metadata
	DisableLearning bool
	Feedback        map[string]float64
	Debug           bool
}

// Response is the final shaped result of one pipeline run.
type Response struct {
	Emotions          Distribution `json:"emotions"`
	DominantEmotion   string       `json:"dominant_emotion"`
	InputText         string       `json:"input_text"`
	Context           string       `json:"context"`
	ContextConfidence float64      `json:"context_confidence"`
	Timestamp         time.Time    `json:"timestamp"`
	InteractionID     string       `json:"interaction_id,omitempty"`
	Error             string       `json:"error,omitempty"`
	Debug             *DebugInfo   `json:"debug,omitempty"`
}

// DebugInfo carries the intermediate pipeline state when requested.
type DebugInfo struct {
	Sentiment SentimentScore     `json:"sentiment"`
	Features  LinguisticFeatures `json:"features"`
	Context   Context            `json:"context_full"`
	Similar   []Interaction      `json:"similar_interactions,omitempty"`
}

// Pipeline sequences scorer, classifier, composer and learner into the
// full affect-inference run. It is the single error boundary: internal
// failures become a well-formed Response, never a panic or a bare
// error escaping mid-pipeline.
type Pipeline struct {
	annotator annotate.Annotator
	scorer    *SentimentScorer
	composer  *EmotionComposer
	learner   *Learner // nil disables learning entirely

	processed atomic.Int64
	failed    atomic.Int64
}

// NewPipeline assembles a pipeline. The learner may be nil, in which
// case learning adjustments and persistence are skipped.
func NewPipeline(annotator annotate.Annotator, learner *Learner) *Pipeline {
	return &Pipeline{
		annotator: annotator,
		scorer:    NewSentimentScorer(),
		composer:  NewEmotionComposer(),
		learner:   learner,
	}
}

// Stats reports how many requests were processed and how many degraded
// due to annotator failure.
func (p *Pipeline) Stats() (processed, failed int64) {
	return p.processed.Load(), p.failed.Load()
}

// Learner exposes the pipeline's learner (nil when learning is off).
func (p *Pipeline) Learner() *Learner {
	return p.learner
}

// Process runs the full pipeline over one input and shapes the
// response. Empty input yields a valid neutral-leaning response.
func (p *Pipeline) Process(text string, opts ProcessOptions) *Response {
	p.processed.Inc()
	resp := &Response{
		InputText: text,
		Timestamp: time.Now(),
	}

	// Annotation. An unavailable annotator degrades to neutral
	// sentiment and empty features; it does not abort the run.
	sentiment := NeutralSentiment()
	var features LinguisticFeatures
	if p.annotator == nil {
		resp.Error = ErrAnnotatorUnavailable
		p.failed.Inc()
	} else if doc, err := p.annotator.Annotate(text); err != nil {
		resp.Error = ErrAnnotatorUnavailable
		p.failed.Inc()
	} else {
		sentiment = p.scorer.Score(doc.Tokens, text)
		features = ExtractFeatures(doc)
	}

	ctx := ClassifyContext(opts.Relationship, opts.History, opts.Metadata)
	emotions := p.composer.Compose(sentiment, features, text, ctx)

	useLearning := p.learner != nil && !opts.DisableLearning
	if useLearning {
		emotions = p.learner.Adjust(text, string(ctx.Type), emotions)
	}

	resp.Emotions = emotions
	resp.DominantEmotion = emotions.Dominant()
	resp.Context = string(ctx.Type)
	resp.ContextConfidence = ctx.Confidence

	if opts.Debug {
		dbg := &DebugInfo{
			Sentiment: sentiment,
			Features:  features,
			Context:   ctx,
		}
		if useLearning {
			dbg.Similar = p.learner.FindSimilar(text, string(ctx.Type), 3)
		}
		resp.Debug = dbg
	}

	if useLearning {
		feedback := opts.Feedback
		if feedback != nil {
			if err := ValidateFeedback(feedback); err != nil {
				log.Printf("[Pipeline] rejecting feedback: %v", err)
				feedback = nil
			}
		}
		if err := p.learner.RecordInteraction(text, emotions, string(ctx.Type), feedback); err != nil {
			log.Printf("[Pipeline] failed to record interaction: %v", err)
		} else if n := p.learner.HistorySize(); n > 0 {
			resp.InteractionID = p.learner.history[n-1].ID
		}
	}
	return resp
}

// ExportJSON writes a Response verbatim as pretty-printed JSON.
func ExportJSON(resp *Response, path string) error {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal response: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// FormatEmotions renders a distribution as "Emotion NN.NN%, ..." for
// console display.
func FormatEmotions(d Distribution) string {
	if len(d) == 0 {
		return "No emotions detected"
	}
	out := ""
	for i, ew := range d {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s %.2f%%", ew.Emotion, ew.Weight*100)
	}
	return out
}
