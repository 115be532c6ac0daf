package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/planlock/planlock/internal/types"
)

var questionsCmd = &cobra.Command{
	Use:   "questions <task-id>",
	Short: "Generate the clarifying-question battery for a task",
	Long: `Generate the fixed battery of clarifying questions for a task.

Generation happens once per task: running this twice fails, and the stored
questions are never regenerated.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		taskID := args[0]
		ctx := context.Background()

		state, err := service.GenerateQuestions(ctx, taskID)
		if err != nil {
			if errors.Is(err, types.ErrAlreadyGenerated) {
				fmt.Fprintf(os.Stderr, "Error: questions already generated for %s (see: planlock status %s)\n", taskID, taskID)
			} else {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			os.Exit(1)
		}

		green := color.New(color.FgGreen).SprintFunc()
		fmt.Printf("%s Generated %d questions for task %s\n", green("✓"), state.Progress.Total, taskID)
		printQuestions(state.Questions)
	},
}

func printQuestions(questions []types.Question) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()

	var current types.Category
	for _, q := range questions {
		if q.Category != current {
			current = q.Category
			fmt.Printf("\n%s\n", cyan("== "+string(current)+" =="))
		}

		marker := " "
		if q.Answered() {
			marker = color.GreenString("✓")
		}
		fmt.Printf("%s %s %s\n", marker, gray(q.ID), q.Prompt)
		for _, c := range q.Choices {
			fmt.Printf("      %s) %s\n", c.ID, c.Label)
		}
		if q.Answered() {
			fmt.Printf("      → %s\n", *q.Answer)
		}
	}
}
