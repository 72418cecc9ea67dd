package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cuemby/weaviate-client-go/pkg/backup"
	"github.com/cuemby/weaviate-client-go/pkg/client"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Create and inspect server-side backups",
}

func init() {
	backupCreateCmd.Flags().StringSlice("include", nil, "Collections to back up (default all)")
	backupCreateCmd.Flags().StringSlice("exclude", nil, "Collections to leave out")
	backupCreateCmd.Flags().Bool("wait", false, "Block until the backup finishes")

	backupCmd.AddCommand(backupCreateCmd)
	backupCmd.AddCommand(backupStatusCmd)
}

var backupCreateCmd = &cobra.Command{
	Use:   "create <backend> <id>",
	Short: "Start a backup on the given backend",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		include, _ := cmd.Flags().GetStringSlice("include")
		exclude, _ := cmd.Flags().GetStringSlice("exclude")
		wait, _ := cmd.Flags().GetBool("wait")

		return withClient(cmd, func(ctx context.Context, c *client.Client) error {
			job, err := c.Backup().Create(ctx, backup.Request{
				Backend:           args[0],
				ID:                args[1],
				Include:           include,
				Exclude:           exclude,
				WaitForCompletion: wait,
			})
			if err != nil {
				return err
			}
			printJob(job)
			return nil
		})
	},
}

var backupStatusCmd = &cobra.Command{
	Use:   "status <backend> <id>",
	Short: "Show the state of a backup",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, func(ctx context.Context, c *client.Client) error {
			job, err := c.Backup().CreateStatus(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			printJob(job)
			return nil
		})
	},
}

func printJob(job *backup.Job) {
	fmt.Printf("Backup:  %s\n", job.ID)
	fmt.Printf("Backend: %s\n", job.Backend)
	fmt.Printf("Status:  %s\n", job.Status)
	if job.Path != "" {
		fmt.Printf("Path:    %s\n", job.Path)
	}
	if len(job.Collections) > 0 {
		fmt.Printf("Collections: %v\n", job.Collections)
	}
	if job.Error != "" {
		fmt.Printf("Error:   %s\n", job.Error)
	}
}
