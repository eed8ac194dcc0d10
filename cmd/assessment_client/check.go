package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/antonv/assessment-client/internal/observability"
	"github.com/antonv/assessment-client/internal/pipeline"
	"github.com/antonv/assessment-client/internal/schemas"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the spreadsheet exports and assembled payloads without sending",
	Long:  "Runs the full transformation, then validates every assembled payload against the request schema. Nothing is posted to the evaluation service.",
	RunE:  runCheck,
}

var (
	checkFiles  fileFlags
	checkConfig configFlags
)

func init() {
	checkCmd.Flags().StringVarP(&checkFiles.matrixPath, "matrix", "m", "", "Path to the competency matrix .xlsx (required)")
	checkCmd.Flags().StringVarP(&checkFiles.answersPath, "answers", "a", "", "Path to the participant answers .xlsx (required)")
	checkCmd.Flags().StringVarP(&checkFiles.tasksPath, "tasks", "t", "", "Path to the task definitions .xlsx (required)")
	checkCmd.Flags().StringVar(&checkConfig.configPath, "config", "", "Path to config.json")
	checkCmd.Flags().StringVar(&checkConfig.assessmentType, "type", "", "Assessment type: external, internal or development")

	_ = checkCmd.MarkFlagRequired("matrix")
	_ = checkCmd.MarkFlagRequired("answers")
	_ = checkCmd.MarkFlagRequired("tasks")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := checkConfig.resolveConfig()
	if err != nil {
		return err
	}

	opts, closeFiles, err := checkFiles.openBuildInputs(cfg)
	if err != nil {
		return err
	}
	defer closeFiles()

	result, err := pipeline.Build(opts)
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintDropReports(result.Drops)

	schemaPath := schemas.ResolveSchemaPath(schemas.AssessmentRequestSchema)
	if schemaPath == "" {
		return fmt.Errorf("schema file not found: %s", schemas.AssessmentRequestSchema)
	}

	invalid := 0
	for i := range result.Requests {
		req := &result.Requests[i]
		if err := req.Validate(); err != nil {
			fmt.Fprintf(os.Stdout, "✗ %s: %v\n", req.UserEmail, err)
			invalid++
			continue
		}
		if err := schemas.ValidatePayload(schemaPath, req); err != nil {
			fmt.Fprintf(os.Stdout, "✗ %s: %v\n", req.UserEmail, err)
			invalid++
			continue
		}
		fmt.Fprintf(os.Stdout, "✓ %s\n", req.UserEmail)
	}

	fmt.Fprintf(os.Stdout, "Проверено участников: %d, с ошибками: %d\n", len(result.Requests), invalid)
	if invalid > 0 {
		return fmt.Errorf("%d из %d запросов не прошли проверку", invalid, len(result.Requests))
	}
	return nil
}
