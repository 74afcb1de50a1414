// Copyright 2025 Project Planner Agent Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package mcp exposes saved project plans to agent tooling over the
// Model Context Protocol.
package mcp

import (
	"context"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/vinvishak/Project-Planner-Agent/pkg/planner"
)

// Server wraps a plan store behind MCP tools.
type Server struct {
	store *planner.Store
}

func NewServer(store *planner.Store) *Server {
	return &Server{store: store}
}

// Run serves the plan tools over stdio until ctx is done or the client
// disconnects.
func (s *Server) Run(ctx context.Context, name, version string) error {
	server := sdk.NewServer(&sdk.Implementation{
		Name:    name,
		Version: version,
	}, nil)

	sdk.AddTool(server, &sdk.Tool{
		Name:        "get_plan",
		Description: "Load a saved project plan with its epics, stories, tasks, and sprints",
	}, s.getPlan)

	sdk.AddTool(server, &sdk.Tool{
		Name:        "list_tasks",
		Description: "List the tasks of a saved project plan, optionally filtered by status",
	}, s.listTasks)

	sdk.AddTool(server, &sdk.Tool{
		Name:        "update_task_status",
		Description: "Set the status of one task in a saved project plan",
	}, s.updateTaskStatus)

	return server.Run(ctx, &sdk.StdioTransport{})
}
