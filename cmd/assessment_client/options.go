package main

import (
	"fmt"
	"os"

	"github.com/antonv/assessment-client/internal/config"
	"github.com/antonv/assessment-client/internal/pipeline"
)

// fileFlags are the spreadsheet path flags shared by the send, preview and
// check commands.
type fileFlags struct {
	matrixPath  string
	answersPath string
	tasksPath   string
}

// configFlags are the endpoint/parameter overrides shared by all commands.
type configFlags struct {
	configPath     string
	apiURL         string
	webhookURL     string
	assessmentType string
	assessmentInfo string
}

// resolveConfig builds the effective configuration: config file values,
// overridden by flags, topped up with env vars and built-in defaults.
func (f *configFlags) resolveConfig() (config.Config, error) {
	cfg := &config.Config{}
	if f.configPath != "" {
		loaded, err := config.LoadConfig(f.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	// Flags take precedence over the config file.
	if f.apiURL != "" {
		cfg.APIURL = f.apiURL
	}
	if f.webhookURL != "" {
		cfg.WebhookURL = f.webhookURL
	}
	if f.assessmentType != "" {
		cfg.AssessmentType = f.assessmentType
	}
	if f.assessmentInfo != "" {
		cfg.AssessmentInfo = f.assessmentInfo
	}

	cfg.ApplyEnv()
	merged := cfg.MergeWithDefaults(*config.DefaultConfig())

	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// openBuildInputs opens the three workbooks and returns the build options.
// The caller owns the returned closer.
func (f *fileFlags) openBuildInputs(cfg config.Config) (pipeline.BuildOptions, func(), error) {
	matrixFile, err := os.Open(f.matrixPath)
	if err != nil {
		return pipeline.BuildOptions{}, nil, fmt.Errorf("failed to open matrix file: %w", err)
	}
	answersFile, err := os.Open(f.answersPath)
	if err != nil {
		_ = matrixFile.Close()
		return pipeline.BuildOptions{}, nil, fmt.Errorf("failed to open answers file: %w", err)
	}
	tasksFile, err := os.Open(f.tasksPath)
	if err != nil {
		_ = matrixFile.Close()
		_ = answersFile.Close()
		return pipeline.BuildOptions{}, nil, fmt.Errorf("failed to open tasks file: %w", err)
	}

	closer := func() {
		_ = matrixFile.Close()
		_ = answersFile.Close()
		_ = tasksFile.Close()
	}

	return pipeline.BuildOptions{
		Config:      cfg,
		MatrixFile:  matrixFile,
		AnswersFile: answersFile,
		TasksFile:   tasksFile,
	}, closer, nil
}
