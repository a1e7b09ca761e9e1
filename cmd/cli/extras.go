// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"path/filepath"
	"strconv"

	"nbproj/internal/analysis"
	"nbproj/internal/logger"
	"nbproj/internal/project"

	"github.com/spf13/cobra"
)

const defaultSampleRows = 50

func (a *app) reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Write a project status report",
		Long:  `Writes a markdown report describing the expected project layout and the commands available once setup has completed.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			projectDir := a.dir
			if abs, err := filepath.Abs(a.dir); err == nil {
				projectDir = abs
			}
			data := project.ReportData{
				GeneratedAt:    a.now(),
				ProjectDir:     filepath.ToSlash(projectDir),
				PackageManager: a.cfg.PackageManager,
				KernelName:     a.cfg.KernelName,
				NotebookPath:   filepath.ToSlash(a.cfg.NotebookPath),
				TestsDir:       filepath.ToSlash(a.cfg.TestsDir),
			}

			rel := a.cfg.StatusReportPath
			path := rel
			if !filepath.IsAbs(path) {
				path = filepath.Join(a.dir, rel)
			}
			if err := project.WriteStatusReport(path, data); err != nil {
				logger.Warn("status report not written", "path", rel, "error", err)
				a.console.Warn("Could not create status report: %v", err)
				return
			}
			a.console.OK("Status report created: %s", filepath.ToSlash(rel))
		},
	}
}

func (a *app) sampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "sample [rows]",
		Short:   "Generate and summarize a sample dataset",
		Example: "  nbproj sample\n  nbproj sample 200",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := defaultSampleRows
			if len(args) == 1 {
				v, err := strconv.Atoi(args[0])
				if err != nil || v < 1 {
					return fmt.Errorf("invalid row count %q: must be a positive integer", args[0])
				}
				n = v
			}

			frame := analysis.CreateSampleData(n)
			a.console.Println("Dataset created:")
			if err := frame.Head(5).Render(a.console.Out); err != nil {
				return err
			}
			a.console.Println("\nAnalysis:")
			analysis.PrintAnalysis(a.console.Out, analysis.Analyze(frame))
			return nil
		},
	}
}

func (a *app) menuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Pick a command interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ok, err := a.runMenu()
			if err != nil {
				return fmt.Errorf("menu failed: %w", err)
			}
			if !ok {
				return nil
			}
			a.dispatch(c)
			return nil
		},
	}
}
