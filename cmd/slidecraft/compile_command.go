package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/slidecraft/slidecraft"
	"github.com/slidecraft/slidecraft/internal/config"
	"github.com/slidecraft/slidecraft/plan"
)

func newCompileCommand(loadConfig func() (*config.Config, error)) *cobra.Command {
	var (
		templateFlag string
		titleFlag    string
		seedFlag     int64
		formatFlag   string
		outputFlag   string
		legacyDrop   bool
	)

	cmd := &cobra.Command{
		Use:   "compile <input-file>",
		Short: "Compile a source document into a slide plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			compiler := slidecraft.FromFile(args[0]).
				Template(templateFlag).
				Segmenter(cfg.SegmentConfig()).
				Sizing(cfg.SizingConfig())

			title := titleFlag
			if title == "" {
				title = cfg.Title
			}
			if title != "" {
				compiler = compiler.Title(title)
			}

			if cmd.Flags().Changed("seed") {
				compiler = compiler.Seed(seedFlag)
			} else if cfg.Allocation.Seed != nil {
				compiler = compiler.Seed(*cfg.Allocation.Seed)
			}
			if cfg.Allocation.DateFormat != "" {
				compiler = compiler.DateFormat(cfg.Allocation.DateFormat)
			}
			if legacyDrop || cfg.Allocation.LegacySilentDrop {
				compiler = compiler.LegacySilentDrop()
			}

			p, warnings, err := compiler.Plan()
			if err != nil {
				return err
			}

			if err := writePlan(cmd, p, formatFlag, outputFlag); err != nil {
				return err
			}

			if len(warnings) > 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "warnings:", slidecraft.FormatWarnings(warnings))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&templateFlag, "template", "t", "", "PPTX template file (required)")
	cmd.Flags().StringVar(&titleFlag, "title", "", "Presentation title")
	cmd.Flags().Int64Var(&seedFlag, "seed", 0, "Seed for overflow layout selection")
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "table", "Output format: table, json, jsonl, or markdown")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().BoolVar(&legacyDrop, "legacy-silent-drop", false, "Silently drop points when a layout has no body slot")
	_ = cmd.MarkFlagRequired("template")

	return cmd
}

// writePlan emits the plan to the chosen destination in the chosen
// format. The "table" format is terminal-only and prints a summary row
// per slide.
func writePlan(cmd *cobra.Command, p *plan.Plan, formatName, output string) error {
	if strings.EqualFold(formatName, "table") {
		fmt.Fprintln(cmd.OutOrStdout(), renderPlanTable(p))
		return nil
	}

	ef, err := plan.ParseExportFormat(formatName)
	if err != nil {
		return err
	}

	if output != "" {
		return p.ExportToFile(output, ef)
	}
	return p.Export(cmd.OutOrStdout(), ef)
}

func renderPlanTable(p *plan.Plan) string {
	headers := []string{"#", "Kind", "Layout", "Role", "Title", "Points"}
	aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignRight}

	rows := make([][]string, 0, len(p.Assignments))
	for _, a := range p.Assignments {
		title := p.Title
		points := 0
		if a.Record != nil {
			title = a.Record.Title
			points = len(a.Record.Points)
		}
		rows = append(rows, []string{
			strconv.Itoa(a.Index),
			a.Kind.String(),
			a.Layout.Name,
			a.Layout.Role.String(),
			title,
			strconv.Itoa(points),
		})
	}
	return renderTable(headers, rows, aligns)
}
