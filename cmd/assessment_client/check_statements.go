package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/antonv/assessment-client/internal/apiclient"
	"github.com/antonv/assessment-client/internal/assemble"
	"github.com/antonv/assessment-client/internal/config"
	"github.com/antonv/assessment-client/internal/observability"
	"github.com/antonv/assessment-client/internal/xlsx"
)

var checkStatementsCmd = &cobra.Command{
	Use:   "check-statements",
	Short: "Submit a standalone statements file, one payload per participant",
	Long:  "Reads a single statements workbook, groups rows per participant email and posts each group to the statements evaluation endpoint.",
	RunE:  runCheckStatements,
}

var (
	statementsPath    string
	statementsAPIURL  string
	statementsWebhook string
	statementsDryRun  bool
)

func init() {
	checkStatementsCmd.Flags().StringVarP(&statementsPath, "statements", "s", "", "Path to the statements .xlsx (required)")
	checkStatementsCmd.Flags().StringVar(&statementsAPIURL, "api-url", config.DefaultStatementsURL, "Statements evaluation endpoint URL")
	checkStatementsCmd.Flags().StringVar(&statementsWebhook, "webhook-url", config.DefaultWebhookURL, "Webhook URL attached to every payload")
	checkStatementsCmd.Flags().BoolVar(&statementsDryRun, "dry-run", false, "Print payloads instead of sending them")

	_ = checkStatementsCmd.MarkFlagRequired("statements")

	rootCmd.AddCommand(checkStatementsCmd)
}

func runCheckStatements(cmd *cobra.Command, args []string) error {
	file, err := os.Open(statementsPath)
	if err != nil {
		return fmt.Errorf("failed to open statements file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The statements export has a single sheet.
	tbl, err := xlsx.ReadSheet(file, "")
	if err != nil {
		return err
	}

	requests, err := assemble.StatementChecks(tbl, statementsWebhook)
	if err != nil {
		return err
	}
	if len(requests) == 0 {
		return fmt.Errorf("в файле не найдено ни одной строки с email участника")
	}

	if statementsDryRun {
		for i := range requests {
			data, err := json.MarshalIndent(&requests[i], "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, string(data))
		}
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	failed := 0
	for i := range requests {
		req := &requests[i]
		email := req.Statements[0].Email
		if err := req.Validate(); err != nil {
			printer.PrintSubmission(email, 0, err.Error())
			failed++
			continue
		}
		resp, err := apiclient.PostJSON(cmd.Context(), statementsAPIURL, req, nil)
		if err != nil {
			printer.PrintSubmission(email, 0, err.Error())
			failed++
			continue
		}
		printer.PrintSubmission(email, resp.StatusCode, "")
		if !resp.OK() {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d из %d отправок завершились с ошибкой", failed, len(requests))
	}
	return nil
}
