package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/demetriusdemiurge/placer/internal/model"
	"github.com/demetriusdemiurge/placer/internal/report"
)

func loadResult(path string) (model.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Result{}, fmt.Errorf("read result: %w", err)
	}
	var r model.Result
	if err := json.Unmarshal(data, &r); err != nil {
		return model.Result{}, fmt.Errorf("decode result: %w", err)
	}
	return r, nil
}

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a PDF report from a solved design",
	}
	cmd.AddCommand(newReportPDFCmd())
	cmd.AddCommand(newReportLabelsCmd())
	return cmd
}

func newReportPDFCmd() *cobra.Command {
	var designPath, resultPath, out string

	cmd := &cobra.Command{
		Use:   "pdf",
		Short: "Render a board layout and metrics summary PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDesign(designPath)
			if err != nil {
				return err
			}
			result, err := loadResult(resultPath)
			if err != nil {
				return err
			}
			return report.ExportPDF(out, d, result)
		},
	}

	cmd.Flags().StringVar(&designPath, "design", "", "path to a design JSON file (defaults to the built-in demo)")
	cmd.Flags().StringVar(&resultPath, "result", "", "path to a solver result JSON file")
	cmd.Flags().StringVar(&out, "out", "report.pdf", "output PDF path")
	cmd.MarkFlagRequired("result")
	return cmd
}

func newReportLabelsCmd() *cobra.Command {
	var designPath, resultPath, out string

	cmd := &cobra.Command{
		Use:   "labels",
		Short: "Render QR-coded assembly labels for every placed component",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDesign(designPath)
			if err != nil {
				return err
			}
			result, err := loadResult(resultPath)
			if err != nil {
				return err
			}
			return report.ExportLabels(out, d, result)
		},
	}

	cmd.Flags().StringVar(&designPath, "design", "", "path to a design JSON file (defaults to the built-in demo)")
	cmd.Flags().StringVar(&resultPath, "result", "", "path to a solver result JSON file")
	cmd.Flags().StringVar(&out, "out", "labels.pdf", "output PDF path")
	cmd.MarkFlagRequired("result")
	return cmd
}
