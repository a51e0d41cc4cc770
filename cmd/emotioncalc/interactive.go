package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	emotioncalc "github.com/affectkit/emotioncalc-go"
)

func newInteractiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Run an interactive analysis session",
		RunE: func(cmd *cobra.Command, args []string) error {
			noLearning, _ := cmd.Flags().GetBool("no-learning")
			pipeline, err := buildPipeline(cmd, !noLearning)
			if err != nil {
				return err
			}
			runInteractive(pipeline, !noLearning)
			return nil
		},
	}
	cmd.Flags().Bool("no-learning", false, "Disable learning from past interactions")
	return cmd
}

func runInteractive(pipeline *emotioncalc.Pipeline, learning bool) {
	fmt.Println("=== Emotion Calculator Interactive Mode ===")
	fmt.Println("Type 'exit' to quit.")
	fmt.Println("Other commands:")
	fmt.Println("  'similar'  - Show similar past responses for the last input")
	fmt.Println("  'feedback' - Provide feedback on the last response")

	scanner := bufio.NewScanner(os.Stdin)

	relationship := ""
	for relationship == "" {
		fmt.Print("\nWhat is your relationship to the machine? (friend/enemy/neutral): ")
		if !scanner.Scan() {
			return
		}
		input := strings.ToLower(strings.TrimSpace(scanner.Text()))
		switch input {
		case "friend", "enemy", "neutral":
			relationship = input
		case "exit":
			return
		default:
			fmt.Println("Please enter 'friend', 'enemy', or 'neutral'.")
		}
	}

	fmt.Printf("\nRelationship set to: %s\n", relationship)
	mode := "OFF"
	if learning {
		mode = "ON"
	}
	fmt.Printf("Learning mode: %s\n", mode)
	fmt.Println("\nEnter text to analyze emotions. Type 'exit' to quit.")

	var history []emotioncalc.HistoryEntry
	var lastResp *emotioncalc.Response
	lastText := ""

	for {
		fmt.Print("\nYou: ")
		if !scanner.Scan() {
			return
		}
		text := strings.TrimSpace(scanner.Text())

		switch {
		case strings.EqualFold(text, "exit"):
			return
		case strings.EqualFold(text, "similar") && lastText != "":
			if pipeline.Learner() != nil {
				printSimilar(pipeline.Learner().FindSimilar(lastText, relationship, 3))
			} else {
				fmt.Println("\nLearning is disabled; no past responses available.")
			}
			continue
		case strings.EqualFold(text, "feedback") && lastResp != nil:
			handleFeedback(scanner, pipeline, lastResp)
			continue
		case text == "":
			continue
		}

		lastText = text
		resp := pipeline.Process(text, emotioncalc.ProcessOptions{
			Relationship: relationship,
			History:      history,
			Debug:        true,
		})
		lastResp = resp

		if resp.Debug != nil {
			history = append(history, emotioncalc.HistoryEntry{
				Text:      text,
				Sentiment: resp.Debug.Sentiment,
			})
		}

		if resp.Error != "" {
			fmt.Printf("\nWarning: %s\n", resp.Error)
		}
		fmt.Println("\nMachine's emotional response:")
		fmt.Println(emotioncalc.FormatEmotions(resp.Emotions))
		if len(resp.Emotions) > 0 {
			top := resp.Emotions[0]
			fmt.Printf("Dominant emotion: %s (%.1f%%)\n", top.Emotion, top.Weight*100)
		}
	}
}

// handleFeedback reads a "Emotion Pct, Emotion Pct" line and attaches
// it to the last response's interaction.
func handleFeedback(scanner *bufio.Scanner, pipeline *emotioncalc.Pipeline, lastResp *emotioncalc.Response) {
	if pipeline.Learner() == nil || lastResp.InteractionID == "" {
		fmt.Println("\nLearning is disabled; feedback cannot be recorded.")
		return
	}
	fmt.Println("\nProvide feedback on the last emotional response.")
	fmt.Println("Enter emotions and percentages, e.g.: Happy 50, Surprised 30, Curious 20")
	fmt.Print("Feedback: ")
	if !scanner.Scan() {
		return
	}
	line := strings.TrimSpace(scanner.Text())
	if line == "" {
		return
	}

	feedback, err := parseFeedback(line)
	if err != nil {
		fmt.Printf("Error processing feedback: %v\n", err)
		fmt.Println("Please use the format: Emotion Percentage, Emotion Percentage, ...")
		return
	}
	if err := pipeline.Learner().ProvideFeedback(lastResp.InteractionID, feedback); err != nil {
		fmt.Printf("Error recording feedback: %v\n", err)
		return
	}
	fmt.Println("Feedback recorded. Thank you!")
}

func parseFeedback(line string) (map[string]float64, error) {
	feedback := make(map[string]float64)
	for _, item := range strings.Split(line, ",") {
		fields := strings.Fields(strings.TrimSpace(item))
		if len(fields) != 2 {
			return nil, fmt.Errorf("malformed entry %q", item)
		}
		pct, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("malformed percentage %q", fields[1])
		}
		feedback[fields[0]] = pct / 100.0
	}
	return feedback, nil
}
