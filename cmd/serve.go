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
	"github.com/spf13/cobra"

	"github.com/tabledata/csv-analyst/internal/config"
	"github.com/tabledata/csv-analyst/internal/mcpserver"
)

var (
	serveHTTP     bool
	serveHTTPAddr string
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Short:   "Run the MCP server",
	Long:    `Serves the inspection operations to an MCP host, over stdio by default or streamable HTTP with --http.`,
	Example: `CSV_ANALYST_DATA_DIR=/srv/data csv-analyst serve --http --http-addr :8000`,
	RunE:    runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	srv := mcpserver.New(svc, version, logger)

	if serveHTTP {
		addr := serveHTTPAddr
		if addr == "" {
			addr = config.GetConfig().HTTPAddr
		}
		return srv.ServeHTTP(addr)
	}
	return srv.ServeStdio()
}

func init() {
	serveCmd.Flags().BoolVar(&serveHTTP, "http", false, "Serve over streamable HTTP instead of stdio")
	serveCmd.Flags().StringVar(&serveHTTPAddr, "http-addr", "", "HTTP listen address (default from CSV_ANALYST_HTTP_ADDR or :8000)")
}
