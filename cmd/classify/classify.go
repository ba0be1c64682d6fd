// Package classify handles one-off expense classification commands
package classify

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ranjeetkulkarni/ExpenseNinja/cmd/root"
	"github.com/ranjeetkulkarni/ExpenseNinja/internal/container"
	"github.com/ranjeetkulkarni/ExpenseNinja/internal/models"
)

// Cmd represents the classify command
var Cmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify an expense description against the category set",
	Long: `Classify runs a single expense description through the full classification
tiers (overrides, trigger mappings, entity recognition, model fallback) and
prints the resulting category labels.`,
	Run: classifyFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Text, "text", "t", "", "Expense description to classify")
	_ = Cmd.MarkFlagRequired("text")
}

func classifyFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Classify command called")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	c, err := container.NewContainer(ctx, root.Cfg)
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to wire application dependencies")
	}
	defer func() {
		_ = c.Close()
	}()

	categories := c.GetCategorizer().Classify(ctx, root.Text)
	fmt.Printf("Categories: %s\n", models.JoinCategories(categories))
}
