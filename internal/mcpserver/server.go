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

// Package mcpserver exposes the inspection engine to MCP hosts. It is a thin
// shell: every tool delegates to the analyst service, and the engine packages
// know nothing about it.
package mcpserver

import (
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/tabledata/csv-analyst/internal/analyst"
)

const serverName = "CSV Analyst"

// Server wraps an MCP server around the analyst service.
type Server struct {
	svc    *analyst.Service
	logger *zap.Logger
	mcp    *server.MCPServer
}

// New builds the MCP server and registers all tools, resources and prompts.
func New(svc *analyst.Service, version string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{svc: svc, logger: logger}

	m := server.NewMCPServer(serverName, version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithPromptCapabilities(false),
		server.WithRecovery(),
	)
	s.registerTools(m)
	s.registerResources(m)
	s.registerPrompts(m)
	s.mcp = m
	return s
}

// ServeStdio runs the server over stdin/stdout until EOF. Logging must stay
// on stderr: stdout carries the JSON-RPC stream.
func (s *Server) ServeStdio() error {
	s.logger.Info("serving MCP over stdio", zap.String("data_dir", s.svc.DataDir()))
	return server.ServeStdio(s.mcp)
}

// ServeHTTP runs the streamable HTTP transport on addr.
func (s *Server) ServeHTTP(addr string) error {
	s.logger.Info("serving MCP over HTTP",
		zap.String("addr", addr),
		zap.String("data_dir", s.svc.DataDir()))
	return server.NewStreamableHTTPServer(s.mcp).Start(addr)
}
