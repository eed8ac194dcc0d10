package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/antonv/assessment-client/internal/assemble"
	"github.com/antonv/assessment-client/internal/observability"
	"github.com/antonv/assessment-client/internal/pipeline"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Run the transformation and print per-participant payloads without sending",
	RunE:  runPreview,
}

var (
	previewFiles   fileFlags
	previewConfig  configFlags
	previewChapter string
	previewEmail   string
)

func init() {
	previewCmd.Flags().StringVarP(&previewFiles.matrixPath, "matrix", "m", "", "Path to the competency matrix .xlsx (required)")
	previewCmd.Flags().StringVarP(&previewFiles.answersPath, "answers", "a", "", "Path to the participant answers .xlsx (required)")
	previewCmd.Flags().StringVarP(&previewFiles.tasksPath, "tasks", "t", "", "Path to the task definitions .xlsx (required)")
	previewCmd.Flags().StringVar(&previewConfig.configPath, "config", "", "Path to config.json")
	previewCmd.Flags().StringVar(&previewConfig.assessmentType, "type", "", "Assessment type: external, internal or development")
	previewCmd.Flags().StringVar(&previewConfig.assessmentInfo, "info", "", "Free-text assessment context")
	previewCmd.Flags().StringVar(&previewChapter, "chapter", "", `Limit output to one chapter, e.g. "Дилеммы"`)
	previewCmd.Flags().StringVar(&previewEmail, "email", "", "Limit output to one participant")

	_ = previewCmd.MarkFlagRequired("matrix")
	_ = previewCmd.MarkFlagRequired("answers")
	_ = previewCmd.MarkFlagRequired("tasks")

	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := previewConfig.resolveConfig()
	if err != nil {
		return err
	}

	opts, closeFiles, err := previewFiles.openBuildInputs(cfg)
	if err != nil {
		return err
	}
	defer closeFiles()

	result, err := pipeline.Build(opts)
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stderr).PrintDropReports(result.Drops)

	requests := result.Requests
	if previewChapter != "" {
		requests = assemble.FilterChapter(requests, previewChapter)
	}

	shown := 0
	for i := range requests {
		if previewEmail != "" && requests[i].UserEmail != previewEmail {
			continue
		}
		data, err := json.MarshalIndent(&requests[i], "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode payload for %s: %w", requests[i].UserEmail, err)
		}
		fmt.Fprintln(os.Stdout, string(data))
		shown++
	}

	if shown == 0 {
		fmt.Fprintln(os.Stderr, "Ни одного участника не попало под заданные фильтры.")
	}
	return nil
}
