package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/wintrace/wintrace/categories"
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage app category overrides",
}

var categorySetCmd = &cobra.Command{
	Use:   "set <app> <category>",
	Short: "Assign a category to an app",
	Long: `Set persists a category override for an app identifier, e.g.

  wintrace category set slack.exe Communication

Overrides take precedence over the built-in defaults and are picked up by a
running daemon without a restart.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfiguration(cmd)
		if err != nil {
			return err
		}

		resolver, err := categories.NewResolver(cfg.CategoriesFilePath())
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: existing overrides unreadable: %v\n", err)
		}
		if err := resolver.SetOverride(args[0], args[1]); err != nil {
			return fmt.Errorf("failed to save override: %w", err)
		}
		fmt.Printf("%s -> %s\n", args[0], args[1])
		return nil
	},
}

var categoryGetCmd = &cobra.Command{
	Use:   "get <app>",
	Short: "Show the resolved category for an app",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfiguration(cmd)
		if err != nil {
			return err
		}

		resolver, err := categories.NewResolver(cfg.CategoriesFilePath())
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: overrides unreadable: %v\n", err)
		}
		fmt.Println(resolver.Resolve(args[0]))
		return nil
	},
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List persisted category overrides",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfiguration(cmd)
		if err != nil {
			return err
		}

		resolver, err := categories.NewResolver(cfg.CategoriesFilePath())
		if err != nil {
			return fmt.Errorf("failed to load overrides: %w", err)
		}
		overrides := resolver.Overrides()
		if len(overrides) == 0 {
			fmt.Println("No overrides configured.")
			return nil
		}
		apps := make([]string, 0, len(overrides))
		for app := range overrides {
			apps = append(apps, app)
		}
		sort.Strings(apps)
		for _, app := range apps {
			fmt.Printf("%-30s %s\n", app, overrides[app])
		}
		return nil
	},
}

func init() {
	categoryCmd.AddCommand(categorySetCmd)
	categoryCmd.AddCommand(categoryGetCmd)
	categoryCmd.AddCommand(categoryListCmd)
	rootCmd.AddCommand(categoryCmd)
}
