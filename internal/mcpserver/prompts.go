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
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (s *Server) registerPrompts(m *server.MCPServer) {
	m.AddPrompt(mcp.NewPrompt("explain_columns",
		mcp.WithPromptDescription("Explain the columns of a CSV file and suggest analyses."),
		mcp.WithArgument("filename",
			mcp.ArgumentDescription("CSV file name."),
			mcp.RequiredArgument()),
		mcp.WithArgument("columns",
			mcp.ArgumentDescription("Column names: a JSON array or a comma-separated string."),
			mcp.RequiredArgument()),
	), s.handleExplainColumns)

	m.AddPrompt(mcp.NewPrompt("detect_anomalies",
		mcp.WithPromptDescription("Point out possible anomalies/outliers from a describe summary."),
		mcp.WithArgument("filename",
			mcp.ArgumentDescription("CSV file name."),
			mcp.RequiredArgument()),
		mcp.WithArgument("summary",
			mcp.ArgumentDescription("JSON summary as produced by describe_csv."),
			mcp.RequiredArgument()),
	), s.handleDetectAnomalies)

	m.AddPrompt(mcp.NewPrompt("generate_query",
		mcp.WithPromptDescription("Generate a natural-language query to extract a subset of a CSV."),
		mcp.WithArgument("filename",
			mcp.ArgumentDescription("CSV file name."),
			mcp.RequiredArgument()),
		mcp.WithArgument("objective",
			mcp.ArgumentDescription("What the subset should capture."),
			mcp.RequiredArgument()),
	), s.handleGenerateQuery)
}

// parseColumnsArg accepts either a JSON array ("[\"a\",\"b\"]") or a
// comma-separated string ("a, b").
func parseColumnsArg(raw string) []string {
	var parsed []string
	if err := json.Unmarshal([]byte(raw), &parsed); err == nil {
		return parsed
	}
	var cols []string
	for _, c := range strings.Split(raw, ",") {
		if c = strings.TrimSpace(c); c != "" {
			cols = append(cols, c)
		}
	}
	return cols
}

func (s *Server) handleExplainColumns(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	filename := req.Params.Arguments["filename"]
	columns := parseColumnsArg(req.Params.Arguments["columns"])

	text := fmt.Sprintf(
		"You have a CSV file named %q with these columns:\n%s\n\n"+
			"Explain in plain language what each column means and what it represents, "+
			"and suggest at least two useful analyses or visualizations.",
		filename, strings.Join(columns, ", "))

	return mcp.NewGetPromptResult("Explain the columns of a CSV file.",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
		}), nil
}

func (s *Server) handleDetectAnomalies(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	filename := req.Params.Arguments["filename"]
	raw := req.Params.Arguments["summary"]

	var summary map[string]any
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		text := "The 'summary' argument must be valid JSON. " +
			`Example: {"price":{"type":"numeric","missing":0,"min":0,"max":59.99}}`
		return mcp.NewGetPromptResult("Invalid summary argument.",
			[]mcp.PromptMessage{
				mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
			}), nil
	}

	text := fmt.Sprintf(
		"The file %q has these statistics:\n%s\n\n"+
			"- Point out columns with possibly anomalous values and why.\n"+
			"- Suggest additional checks to verify them.\n"+
			"- Propose a strategy or visualization to dig into the outliers.",
		filename, raw)

	return mcp.NewGetPromptResult("Detect anomalies from a describe summary.",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
		}), nil
}

func (s *Server) handleGenerateQuery(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	filename := req.Params.Arguments["filename"]
	objective := req.Params.Arguments["objective"]

	text := fmt.Sprintf(
		"File: %q\nObjective: %s\n\n"+
			"Generate a natural-language query that:\n"+
			"- filters the dataset in line with the objective;\n"+
			"- names the columns used for filtering, grouping and ordering;\n"+
			"- describes how to run it with the filter_equals tool.",
		filename, objective)

	return mcp.NewGetPromptResult("Generate a query for a CSV subset.",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
		}), nil
}
