// Package main provides the entry point for the assessment client CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "assessment_client",
	Short: "Assessment ingestion and submission client",
	Long:  "Assessment client validates spreadsheet exports of a competency matrix and participant answers, assembles one assessment request per participant and submits the batch to the evaluation service.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
