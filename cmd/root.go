/*
 * Copyright 2025 Google LLC
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *    https://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tabledata/csv-analyst/internal/analyst"
	"github.com/tabledata/csv-analyst/internal/catalog"
	"github.com/tabledata/csv-analyst/internal/config"
	_ "github.com/tabledata/csv-analyst/internal/tabular/csvfmt"
)

const version = "0.1.0"

var (
	dataDir  string
	logLevel string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "csv-analyst",
	Short: "Inspect CSV files in a data directory",
	Long: `csv-analyst answers four read-only queries against the CSV files in a
single data directory: list the files, preview leading rows, compute
per-column summary statistics, and filter rows by exact column-value match.
The same operations are exposed to MCP hosts via the serve command.`,
	PersistentPreRunE: initFlagsAndConfig,
	SilenceUsage:      true,
}

// initFlagsAndConfig binds flags over the environment and builds the logger.
func initFlagsAndConfig(cmd *cobra.Command, args []string) error {
	v := config.NewViper()
	flags := cmd.Root().PersistentFlags()
	if err := v.BindPFlag("data_dir", flags.Lookup("data-dir")); err != nil {
		return err
	}
	if err := v.BindPFlag("log_level", flags.Lookup("log-level")); err != nil {
		return err
	}
	cfg := config.FromViper(v)
	config.SetConfig(cfg)

	lvl, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	// stdout is reserved for command output and the stdio MCP transport.
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)
	zapCfg.OutputPaths = []string{"stderr"}
	zapCfg.ErrorOutputPaths = []string{"stderr"}
	logger, err = zapCfg.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	return nil
}

func newService() (*analyst.Service, error) {
	cfg := config.GetConfig()
	if cfg == nil {
		return nil, fmt.Errorf("config is not initialized")
	}
	resolver, err := catalog.NewResolver(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory: %w", err)
	}
	return analyst.NewService(resolver, logger), nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "./data", "Directory the CSV files are read from (env: CSV_ANALYST_DATA_DIR)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error (env: CSV_ANALYST_LOG_LEVEL)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listFilesCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(filterCmd)
}
