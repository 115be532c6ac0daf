package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status <task-id>",
	Short: "Show planning progress for a task",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		taskID := args[0]
		ctx := context.Background()

		state, err := service.GetPlanningState(ctx, taskID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		fmt.Printf("\n%s\n", cyan("=== Planning Status ==="))
		fmt.Printf("Task: %s\n", state.TaskID)

		if state.IsLocked {
			fmt.Printf("Locked: %s (spec %s, %s)\n",
				color.GreenString("yes"), state.Spec.ID, state.Spec.CreatedAt.Format("2006-01-02 15:04"))
		} else {
			fmt.Printf("Locked: no\n")
		}

		p := state.Progress
		fmt.Printf("Progress: %s %d/%d (%d%%)\n", progressBar(p.Percentage), p.Answered, p.Total, p.Percentage)

		if p.Total == 0 {
			fmt.Printf("\nNo questions yet. Run: planlock questions %s\n", taskID)
			return
		}

		printQuestions(state.Questions)

		if !state.IsLocked && p.Complete() {
			fmt.Printf("\nAll questions answered. Lock the plan with: planlock lock %s\n", taskID)
		}
	},
}

func progressBar(percentage int) string {
	const width = 20
	filled := percentage * width / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	if percentage == 100 {
		return color.GreenString(bar)
	}
	return color.YellowString(bar)
}
