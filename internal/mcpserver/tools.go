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
package mcpserver

import (
	"context"
	"encoding/json"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (s *Server) registerTools(m *server.MCPServer) {
	m.AddTool(mcp.NewTool("list_csvs",
		mcp.WithDescription("List the CSV files available in the data directory, with byte sizes."),
	), s.handleListCSVs)

	m.AddTool(mcp.NewTool("preview_csv",
		mcp.WithDescription("Return the header and first N rows of a CSV file."),
		mcp.WithString("filename", mcp.Required(),
			mcp.Description("File name (e.g. 'games.csv') inside the data directory.")),
		mcp.WithNumber("n",
			mcp.DefaultNumber(5),
			mcp.Description("Number of leading rows to return; must be positive.")),
	), s.handlePreviewCSV)

	m.AddTool(mcp.NewTool("describe_csv",
		mcp.WithDescription("Compute per-column summary statistics for a CSV file: inferred type, missing/non-missing counts, min/max/mean for numeric columns, distinct count and most frequent value for text columns."),
		mcp.WithString("filename", mcp.Required(),
			mcp.Description("File name inside the data directory.")),
	), s.handleDescribeCSV)

	m.AddTool(mcp.NewTool("filter_equals",
		mcp.WithDescription("Return the rows where a column equals a value. The value is coerced to the column's inferred type; on a numeric column a non-numeric value matches nothing. Missing cells never match."),
		mcp.WithString("filename", mcp.Required(),
			mcp.Description("File name inside the data directory.")),
		mcp.WithString("column", mcp.Required(),
			mcp.Description("Column name, case-sensitive.")),
		mcp.WithString("value", mcp.Required(),
			mcp.Description("Value to compare against, supplied as text.")),
		mcp.WithNumber("limit",
			mcp.DefaultNumber(0),
			mcp.Description("Maximum rows to return; 0 means unlimited.")),
	), s.handleFilterEquals)

	m.AddTool(mcp.NewTool("debug_paths",
		mcp.WithDescription("Diagnostics: the configured data directory, whether it exists, and the files found in it."),
	), s.handleDebugPaths)
}

func (s *Server) handleListCSVs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	files, err := s.svc.ListFiles()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name
	}
	return jsonResult(map[string]any{"files": files, "names": names})
}

func (s *Server) handlePreviewCSV(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filename, err := req.RequireString("filename")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	n := req.GetInt("n", 5)

	resp, err := s.svc.Preview(filename, n)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(resp)
}

func (s *Server) handleDescribeCSV(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filename, err := req.RequireString("filename")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	resp, err := s.svc.Describe(filename)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(resp)
}

func (s *Server) handleFilterEquals(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filename, err := req.RequireString("filename")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	column, err := req.RequireString("column")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	value, err := req.RequireString("value")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	limit := req.GetInt("limit", 0)

	resp, err := s.svc.FilterEquals(filename, column, value)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if limit > 0 && len(resp.Rows) > limit {
		resp.Rows = resp.Rows[:limit]
	}
	return jsonResult(map[string]any{
		"columns":        resp.Columns,
		"rows":           resp.Rows,
		"count_returned": len(resp.Rows),
	})
}

func (s *Server) handleDebugPaths(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dataDir := s.svc.DataDir()
	_, statErr := os.Stat(dataDir)

	var names []string
	if files, err := s.svc.ListFiles(); err == nil {
		for _, f := range files {
			names = append(names, f.Name)
		}
	}
	return jsonResult(map[string]any{
		"data_dir":  dataDir,
		"exists":    statErr == nil,
		"csv_found": names,
	})
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(b)), nil
}
