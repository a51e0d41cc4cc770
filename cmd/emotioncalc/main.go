package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	emotioncalc "github.com/affectkit/emotioncalc-go"
	"github.com/affectkit/emotioncalc-go/annotate"
	"github.com/affectkit/emotioncalc-go/store"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "emotioncalc",
		Short: "Emotion calculator - maps text and relationship context to emotions",
		Long: `emotioncalc converts a span of text plus a relationship context into a
ranked distribution over emotion categories, and learns word and phrase
associations from past interactions to sharpen future responses.`,
	}

	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file")

	rootCmd.AddCommand(
		newVersionCmd(),
		newAnalyzeCmd(),
		newInteractiveCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("emotioncalc version %s\n", version)
		},
	}
}

// buildPipeline wires the annotator, store and learner from config.
func buildPipeline(cmd *cobra.Command, learning bool) (*emotioncalc.Pipeline, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		return nil, err
	}

	var learner *emotioncalc.Learner
	if learning {
		var backend emotioncalc.InteractionStore
		if cfg.RedisAddr != "" {
			backend = store.NewRedisStore(store.RedisConfig{
				Addr: cfg.RedisAddr,
				DB:   cfg.RedisDB,
				Key:  cfg.RedisKey,
			})
		} else {
			backend = store.NewFileStore(cfg.StorePath)
		}
		learner, err = emotioncalc.NewLearner(backend)
		if err != nil {
			return nil, err
		}
	}
	return emotioncalc.NewPipeline(annotate.NewProse(), learner), nil
}

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a single text for its emotional response",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, _ := cmd.Flags().GetString("text")
			relationship, _ := cmd.Flags().GetString("relationship")
			debug, _ := cmd.Flags().GetBool("debug")
			output, _ := cmd.Flags().GetString("output")
			noLearning, _ := cmd.Flags().GetBool("no-learning")
			similar, _ := cmd.Flags().GetBool("similar")

			if text == "" {
				return fmt.Errorf("provide text to analyze with --text")
			}

			pipeline, err := buildPipeline(cmd, !noLearning)
			if err != nil {
				return err
			}

			resp := pipeline.Process(text, emotioncalc.ProcessOptions{
				Relationship:    relationship,
				DisableLearning: noLearning,
				Debug:           debug,
			})

			fmt.Printf("\nInput text: %s\n", text)
			fmt.Printf("Context: %s (confidence: %.2f)\n", resp.Context, resp.ContextConfidence)
			if resp.Error != "" {
				fmt.Printf("Warning: %s\n", resp.Error)
			}
			fmt.Printf("\nEmotional Response:\n%s\n", emotioncalc.FormatEmotions(resp.Emotions))

			if similar && pipeline.Learner() != nil {
				printSimilar(pipeline.Learner().FindSimilar(text, resp.Context, 3))
			}
			if output != "" {
				if err := emotioncalc.ExportJSON(resp, output); err != nil {
					return err
				}
				fmt.Printf("\nOutput saved to %s\n", output)
			}
			if debug && resp.Debug != nil {
				fmt.Printf("\nDebug Information:\n")
				fmt.Printf("  sentiment: positive=%.3f negative=%.3f neutral=%.3f hostility=%.3f intensity=%.3f\n",
					resp.Debug.Sentiment.Positive, resp.Debug.Sentiment.Negative,
					resp.Debug.Sentiment.Neutral, resp.Debug.Sentiment.Hostility,
					resp.Debug.Sentiment.Intensity)
				fmt.Printf("  key words: %v\n", resp.Debug.Features.KeyWords)
			}
			return nil
		},
	}
	cmd.Flags().StringP("text", "t", "", "Input text to analyze")
	cmd.Flags().StringP("relationship", "r", "", "Relationship context (friend, enemy, neutral)")
	cmd.Flags().BoolP("debug", "d", false, "Include debug information in the output")
	cmd.Flags().StringP("output", "o", "", "Save the response as JSON to this path")
	cmd.Flags().Bool("no-learning", false, "Disable learning from past interactions")
	cmd.Flags().BoolP("similar", "s", false, "Show similar past responses")
	return cmd
}

func printSimilar(similar []emotioncalc.Interaction) {
	if len(similar) == 0 {
		fmt.Println("\nNo similar past responses found.")
		return
	}
	fmt.Println("\nSimilar past responses:")
	for i, interaction := range similar {
		fmt.Printf("%d. %q (%s)\n", i+1, interaction.InputText, interaction.Context)
		fmt.Printf("   Emotions: %s\n", emotioncalc.FormatEmotions(interaction.Emotions))
	}
}
