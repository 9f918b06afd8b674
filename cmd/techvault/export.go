package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Spok95/techvault/internal/domain/inventory"
	"github.com/Spok95/techvault/internal/infra/excel"
)

var (
	exportEntity string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write one collection to an .xlsx file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if !slices.Contains(inventory.Entities, exportEntity) {
			return fmt.Errorf("unknown entity %q, want one of: %s", exportEntity, strings.Join(inventory.Entities, ", "))
		}
		kv, closeKV, err := openStore(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer closeKV()

		t, err := excel.NewExporter(newInventory(kv, cfg)).Table(cmd.Context(), exportEntity)
		if err != nil {
			return err
		}
		if exportOut == "-" {
			return excel.Write(cmd.OutOrStdout(), t)
		}

		out := exportOut
		if out == "" {
			out = exportEntity + ".xlsx"
		}
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		if err := excel.Write(f, t); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		log.Info("exported", "entity", exportEntity, "rows", len(t.Rows), "file", out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportEntity, "entity", "e", "", "Collection: "+strings.Join(inventory.Entities, ", "))
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", `Output file ("-" for stdout, default <entity>.xlsx)`)
	_ = exportCmd.MarkFlagRequired("entity")
}
