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

var lockOutput string

var lockCmd = &cobra.Command{
	Use:   "lock <task-id>",
	Short: "Lock the plan into an immutable spec document",
	Long: `Freeze the task's answered plan into a spec document.

Locking requires every question to be answered and is irreversible: after a
successful lock no answer can be changed, and the spec is the permanent
record of the plan.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		taskID := args[0]
		ctx := context.Background()

		spec, err := service.LockSpec(ctx, taskID)
		if err != nil {
			switch {
			case errors.Is(err, types.ErrIncomplete):
				fmt.Fprintf(os.Stderr, "Error: not all questions are answered (see: planlock status %s)\n", taskID)
			case errors.Is(err, types.ErrAlreadyLocked):
				fmt.Fprintf(os.Stderr, "Error: task %s is already locked\n", taskID)
			default:
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			os.Exit(1)
		}

		green := color.New(color.FgGreen).SprintFunc()
		fmt.Printf("%s Locked task %s (spec %s)\n", green("✓"), taskID, spec.ID)

		if lockOutput != "" {
			if err := os.WriteFile(lockOutput, []byte(spec.Markdown), 0644); err != nil {
				fmt.Fprintf(os.Stderr, "Error: failed to write %s: %v\n", lockOutput, err)
				os.Exit(1)
			}
			fmt.Printf("Spec written to %s\n", lockOutput)
			return
		}

		fmt.Printf("\n%s\n", spec.Markdown)
	},
}

func init() {
	lockCmd.Flags().StringVarP(&lockOutput, "output", "o", "", "write the spec markdown to a file instead of stdout")
}
