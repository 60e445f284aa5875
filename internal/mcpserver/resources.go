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
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const indexURI = "csv://index"

func (s *Server) registerResources(m *server.MCPServer) {
	m.AddResource(mcp.NewResource(indexURI, "csv-index",
		mcp.WithResourceDescription("The CSV files available under the data directory."),
		mcp.WithMIMEType("text/plain"),
	), s.handleIndex)
}

func (s *Server) handleIndex(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	files, err := s.svc.ListFiles()
	if err != nil {
		return nil, err
	}

	var text string
	if len(files) == 0 {
		text = fmt.Sprintf("No CSV files found in %s", s.svc.DataDir())
	} else {
		var b strings.Builder
		b.WriteString("Available CSV files:\n")
		for _, f := range files {
			fmt.Fprintf(&b, "- %s\n", f.Name)
		}
		text = b.String()
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     text,
		},
	}, nil
}
