// Package export handles CSV export of recorded expenses
package export

import (
	"context"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"

	"github.com/ranjeetkulkarni/ExpenseNinja/cmd/root"
	"github.com/ranjeetkulkarni/ExpenseNinja/internal/container"
	"github.com/ranjeetkulkarni/ExpenseNinja/internal/ledger"
	"github.com/ranjeetkulkarni/ExpenseNinja/internal/logging"
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export all recorded expenses to a CSV file",
	Long:  `Export writes every expense in the ledger to a CSV file, one row per record.`,
	Run:   exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Output, "output", "o", "expenses.csv", "Output CSV file")
}

func exportFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Export command called")

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

	result, err := c.GetLedger().Query(ctx, ledger.Filter{})
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to read expenses from the ledger")
	}

	for i := range result.Records {
		result.Records[i].SyncCategoryList()
	}

	file, err := os.Create(root.Output)
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to create output file")
	}
	defer func() {
		_ = file.Close()
	}()

	if err := gocsv.MarshalFile(&result.Records, file); err != nil {
		root.Log.WithError(err).Fatal("Failed to write CSV")
	}

	root.Log.Info("Expenses exported",
		logging.Field{Key: logging.FieldCount, Value: len(result.Records)},
		logging.Field{Key: "output", Value: root.Output})
}
