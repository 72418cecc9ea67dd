package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cuemby/weaviate-client-go/pkg/client"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Inspect and manage the collection schema",
}

func init() {
	schemaCmd.AddCommand(schemaListCmd)
	schemaCmd.AddCommand(schemaGetCmd)
	schemaCmd.AddCommand(schemaDeleteCmd)
}

var schemaListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all collections",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, func(ctx context.Context, c *client.Client) error {
			all, err := c.Collections().List(ctx)
			if err != nil {
				return err
			}
			if len(all) == 0 {
				fmt.Println("No collections")
				return nil
			}
			for _, cfg := range all {
				fmt.Printf("%s  (%d properties, %d references)\n",
					cfg.Name, len(cfg.Properties), len(cfg.References))
			}
			return nil
		})
	},
}

var schemaGetCmd = &cobra.Command{
	Use:   "get <collection>",
	Short: "Show one collection's schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, func(ctx context.Context, c *client.Client) error {
			cfg, err := c.Collection(args[0]).Config().Get(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("Collection: %s\n", cfg.Name)
			if cfg.Description != "" {
				fmt.Printf("Description: %s\n", cfg.Description)
			}
			if cfg.Vectorizer != "" {
				fmt.Printf("Vectorizer: %s\n", cfg.Vectorizer)
			}
			if len(cfg.Properties) > 0 {
				fmt.Println("Properties:")
				for _, p := range cfg.Properties {
					fmt.Printf("  %-24s %s\n", p.Name, p.DataType)
				}
			}
			if len(cfg.References) > 0 {
				fmt.Println("References:")
				for _, r := range cfg.References {
					fmt.Printf("  %-24s -> %v\n", r.Name, r.TargetCollections)
				}
			}
			if cfg.MultiTenancy != nil && cfg.MultiTenancy.Enabled {
				fmt.Println("Multi-tenancy: enabled")
			}
			return nil
		})
	},
}

var schemaDeleteCmd = &cobra.Command{
	Use:   "delete <collection>",
	Short: "Delete a collection and all of its data",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			return fmt.Errorf("deleting %q removes all of its data; re-run with --force", args[0])
		}
		return withClient(cmd, func(ctx context.Context, c *client.Client) error {
			if err := c.Collections().Delete(ctx, args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted collection %s\n", args[0])
			return nil
		})
	},
}

func init() {
	schemaDeleteCmd.Flags().Bool("force", false, "Confirm the deletion")
}
