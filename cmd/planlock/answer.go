package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/planlock/planlock/internal/types"
)

var (
	answerFile  string
	answerOther bool
)

var answerCmd = &cobra.Command{
	Use:   "answer <task-id> [question-id] [value]",
	Short: "Answer a question (or a batch of questions from a YAML file)",
	Long: `Answer one question, or apply a batch of answers from a YAML file mapping
question IDs to values:

  planlock answer <task-id> <question-id> "Launch something new"
  planlock answer <task-id> <question-id> --other "something the choices missed"
  planlock answer <task-id> --from-file answers.yaml

Answers overwrite freely until the plan is locked; after that every answer
attempt is rejected.`,
	Args: cobra.RangeArgs(1, 3),
	Run: func(cmd *cobra.Command, args []string) {
		taskID := args[0]
		ctx := context.Background()

		if answerFile != "" {
			if len(args) != 1 {
				fmt.Fprintf(os.Stderr, "Error: --from-file takes only the task ID\n")
				os.Exit(1)
			}
			applyAnswerFile(ctx, taskID, answerFile)
			return
		}

		if len(args) != 3 {
			fmt.Fprintf(os.Stderr, "Error: expected <task-id> <question-id> <value>\n")
			os.Exit(1)
		}
		questionID, value := args[1], args[2]
		if answerOther {
			value = "Other: " + value
		}

		q, err := service.AnswerQuestion(ctx, taskID, questionID, value)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", answerErrorMessage(err))
			os.Exit(1)
		}

		green := color.New(color.FgGreen).SprintFunc()
		fmt.Printf("%s %s\n  → %s\n", green("✓"), q.Prompt, *q.Answer)
	},
}

func applyAnswerFile(ctx context.Context, taskID, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to read %s: %v\n", path, err)
		os.Exit(1)
	}

	var answers map[string]string
	if err := yaml.Unmarshal(data, &answers); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to parse %s: %v\n", path, err)
		os.Exit(1)
	}

	green := color.New(color.FgGreen).SprintFunc()
	applied := 0
	for questionID, value := range answers {
		if _, err := service.AnswerQuestion(ctx, taskID, questionID, value); err != nil {
			fmt.Fprintf(os.Stderr, "Error: question %s: %s\n", questionID, answerErrorMessage(err))
			os.Exit(1)
		}
		applied++
	}
	fmt.Printf("%s Applied %d answers to task %s\n", green("✓"), applied, taskID)
}

func answerErrorMessage(err error) string {
	switch {
	case errors.Is(err, types.ErrLocked):
		return "this plan is locked; answers can no longer be changed"
	case errors.Is(err, types.ErrInvalidInput):
		return "answer value cannot be empty"
	case errors.Is(err, types.ErrQuestionNotFound):
		return "question not found for this task"
	default:
		return err.Error()
	}
}

func init() {
	answerCmd.Flags().StringVar(&answerFile, "from-file", "", "YAML file mapping question IDs to answer values")
	answerCmd.Flags().BoolVar(&answerOther, "other", false, `submit the value as an "Other: <text>" elaboration`)
}
