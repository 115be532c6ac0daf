package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/planlock/planlock/internal/types"
)

var taskDescription string

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Task commands",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var taskCreateCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Create a new task",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		task := &types.Task{
			ID:          uuid.New().String(),
			Title:       args[0],
			Description: taskDescription,
			Status:      types.StatusCreated,
		}
		if err := store.CreateTask(ctx, task); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to create task: %v\n", err)
			os.Exit(1)
		}

		green := color.New(color.FgGreen).SprintFunc()
		fmt.Printf("%s Created task %s - %s\n", green("✓"), task.ID, task.Title)
		fmt.Printf("Next: planlock questions %s\n", task.ID)
	},
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tasks",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		tasks, err := store.ListTasks(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to list tasks: %v\n", err)
			os.Exit(1)
		}
		if len(tasks) == 0 {
			fmt.Println("No tasks yet. Create one with: planlock task create <title>")
			return
		}

		gray := color.New(color.FgHiBlack).SprintFunc()
		for _, task := range tasks {
			fmt.Printf("%s  %-10s %s\n", task.ID, statusLabel(task.Status), gray(task.Title))
		}
	},
}

var taskShowCmd = &cobra.Command{
	Use:   "show <task-id>",
	Short: "Show a task",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		task, err := store.GetTask(ctx, args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to get task: %v\n", err)
			os.Exit(1)
		}
		if task == nil {
			fmt.Fprintf(os.Stderr, "Error: task %s not found\n", args[0])
			os.Exit(1)
		}

		fmt.Printf("Task:    %s\n", task.ID)
		fmt.Printf("Title:   %s\n", task.Title)
		if task.Description != "" {
			fmt.Printf("About:   %s\n", task.Description)
		}
		fmt.Printf("Status:  %s\n", statusLabel(task.Status))
		fmt.Printf("Created: %s\n", task.CreatedAt.Format("2006-01-02 15:04"))
	},
}

func statusLabel(status types.TaskStatus) string {
	switch status {
	case types.StatusPlanning:
		return color.YellowString(string(status))
	case types.StatusLocked:
		return color.GreenString(string(status))
	default:
		return string(status)
	}
}

func init() {
	taskCreateCmd.Flags().StringVarP(&taskDescription, "description", "d", "", "task description")
	taskCmd.AddCommand(taskCreateCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskShowCmd)
}
