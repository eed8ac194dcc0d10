package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/antonv/assessment-client/internal/observability"
	"github.com/antonv/assessment-client/internal/pipeline"
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Validate spreadsheet exports and submit one request per participant",
	Long:  "Reads the competency matrix, answers and task-definition workbooks, validates them, assembles one assessment request per participant and posts the batch to the evaluation service.",
	RunE:  runSend,
}

var (
	sendFiles   fileFlags
	sendConfig  configFlags
	sendVerbose bool
)

func init() {
	sendCmd.Flags().StringVarP(&sendFiles.matrixPath, "matrix", "m", "", "Path to the competency matrix .xlsx (required)")
	sendCmd.Flags().StringVarP(&sendFiles.answersPath, "answers", "a", "", "Path to the participant answers .xlsx (required)")
	sendCmd.Flags().StringVarP(&sendFiles.tasksPath, "tasks", "t", "", "Path to the task definitions .xlsx (required)")
	sendCmd.Flags().StringVar(&sendConfig.configPath, "config", "", "Path to config.json (values can be overridden by other flags)")
	sendCmd.Flags().StringVar(&sendConfig.apiURL, "api-url", "", "Evaluation endpoint URL")
	sendCmd.Flags().StringVar(&sendConfig.webhookURL, "webhook-url", "", "Webhook URL attached to every request")
	sendCmd.Flags().StringVar(&sendConfig.assessmentType, "type", "", "Assessment type: external, internal or development")
	sendCmd.Flags().StringVar(&sendConfig.assessmentInfo, "info", "", "Free-text assessment context")
	sendCmd.Flags().BoolVarP(&sendVerbose, "verbose", "v", false, "Print per-participant summaries")

	_ = sendCmd.MarkFlagRequired("matrix")
	_ = sendCmd.MarkFlagRequired("answers")
	_ = sendCmd.MarkFlagRequired("tasks")

	rootCmd.AddCommand(sendCmd)
}

func runSend(cmd *cobra.Command, args []string) error {
	cfg, err := sendConfig.resolveConfig()
	if err != nil {
		return err
	}

	opts, closeFiles, err := sendFiles.openBuildInputs(cfg)
	if err != nil {
		return err
	}
	defer closeFiles()

	printer := observability.NewPrinter(os.Stdout)
	if sendVerbose {
		opts.OnProgress = func(event pipeline.ProgressEvent) {
			fmt.Fprintf(os.Stdout, "[%s] %s\n", event.Step, event.Message)
		}
	}

	result, err := pipeline.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	printer.PrintDropReports(result.Drops)
	if sendVerbose {
		printer.PrintMatrixSummary(result.CompetencyMatrix)
		for i := range result.Requests {
			printer.PrintRequestSummary(&result.Requests[i])
		}
	}

	failed := 0
	for _, sub := range result.Submissions {
		printer.PrintSubmission(sub.Email, sub.StatusCode, sub.TransportErr)
		if !sub.OK() {
			failed++
		}
	}

	fmt.Fprintf(os.Stdout, "Run %s: отправлено %d из %d\n", result.RunID, len(result.Submissions)-failed, len(result.Submissions))
	if failed > 0 {
		return fmt.Errorf("%d из %d отправок завершились с ошибкой", failed, len(result.Submissions))
	}
	return nil
}
