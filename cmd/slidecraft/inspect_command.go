package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/slidecraft/slidecraft/pptx"
	"github.com/slidecraft/slidecraft/template"
)

func newInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <template.pptx>",
		Short: "Show a template's layouts and their classified roles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := pptx.Open(args[0])
			if err != nil {
				return err
			}

			catalog, err := t.Catalog()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderCatalogTable(catalog))
			return nil
		},
	}
	return cmd
}

func renderCatalogTable(catalog *template.Catalog) string {
	headers := []string{"#", "Name", "Role", "Slots", "Title Slot", "Body Slot"}
	aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft, alignLeft}

	rows := make([][]string, 0, catalog.Len())
	for _, l := range catalog.Layouts() {
		titleSlot, bodySlot := "-", "-"
		if slot, ok := l.TitleSlot(); ok {
			titleSlot = string(slot.Handle)
		}
		if slot, ok := l.FirstContentSlot(); ok {
			bodySlot = string(slot.Handle)
		}
		rows = append(rows, []string{
			strconv.Itoa(l.ID),
			l.Name,
			l.Role.String(),
			strconv.Itoa(l.SlotCount()),
			titleSlot,
			bodySlot,
		})
	}
	return renderTable(headers, rows, aligns)
}
