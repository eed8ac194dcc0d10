package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/antonv/assessment-client/internal/apiclient"
	"github.com/antonv/assessment-client/internal/config"
	"github.com/antonv/assessment-client/internal/types"
)

var requestMatrixCmd = &cobra.Command{
	Use:   "request-matrix",
	Short: "Request a competency matrix from the evaluation service",
	Long:  "Reads a MatrixRequest JSON file describing the company, audience and competency seeds, validates it (weights must sum to 100) and posts it to the matrix-preparation endpoint.",
	RunE:  runRequestMatrix,
}

var (
	matrixRequestPath   string
	matrixRequestAPIURL string
	matrixRequestDryRun bool
)

func init() {
	requestMatrixCmd.Flags().StringVarP(&matrixRequestPath, "input", "i", "", "Path to the MatrixRequest JSON file (required)")
	requestMatrixCmd.Flags().StringVar(&matrixRequestAPIURL, "api-url", config.DefaultMatrixRequestURL, "Matrix-preparation endpoint URL")
	requestMatrixCmd.Flags().BoolVar(&matrixRequestDryRun, "dry-run", false, "Validate and print the payload instead of sending it")

	_ = requestMatrixCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(requestMatrixCmd)
}

func runRequestMatrix(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(matrixRequestPath)
	if err != nil {
		return fmt.Errorf("failed to read request file: %w", err)
	}

	var req types.MatrixRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("failed to parse request JSON: %w", err)
	}
	if req.WebhookURL == "" {
		req.WebhookURL = config.DefaultWebhookURL
	}

	if err := req.Validate(); err != nil {
		return err
	}

	if matrixRequestDryRun {
		out, err := json.MarshalIndent(&req, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(out))
		return nil
	}

	resp, err := apiclient.PostJSON(cmd.Context(), matrixRequestAPIURL, &req, nil)
	if err != nil {
		return err
	}
	if !resp.OK() {
		return fmt.Errorf("сервис вернул HTTP %d: %s", resp.StatusCode, resp.Body)
	}

	fmt.Fprintf(os.Stdout, "Заявка на матрицу принята (HTTP %d)\n", resp.StatusCode)
	fmt.Fprintln(os.Stdout, resp.Body)
	return nil
}
