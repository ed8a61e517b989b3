package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// sourceOptions selects the table configuration and data files. Empty paths
// fall back to the built-in employee example.
type sourceOptions struct {
	configPath string
	dataPath   string
	preset     string
}

func (o *sourceOptions) register(cmd *cobra.Command, withData bool) {
	cmd.Flags().StringVarP(&o.configPath, "config", "c", "", "Table configuration file (YAML)")
	cmd.Flags().StringVar(&o.preset, "preset", "", "Theme preset overriding the configuration (bootstrap, semantic)")
	if withData {
		cmd.Flags().StringVarP(&o.dataPath, "data", "d", "", "Row data file (YAML or JSON)")
	}
}

func validateFilePath(kind, path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s path: %w", kind, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("%s file does not exist: %w", kind, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s path %s is a directory", kind, abs)
	}

	return nil
}
