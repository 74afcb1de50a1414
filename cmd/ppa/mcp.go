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

package main

import (
	"context"

	"github.com/urfave/cli/v3"

	plannercli "github.com/vinvishak/Project-Planner-Agent"
	"github.com/vinvishak/Project-Planner-Agent/pkg/mcp"
)

var MCPCommands = []*cli.Command{
	{
		Name:      "mcp",
		Usage:     "Serve saved plans to agent tooling over the Model Context Protocol (stdio)",
		UsageText: "ppa mcp [--data-dir DIR]",
		Action:    runMCPServer,
		Flags:     []cli.Flag{dataDirFlag},
	},
}

func runMCPServer(ctx context.Context, cmd *cli.Command) error {
	store, err := planStore(cmd)
	if err != nil {
		return err
	}
	return mcp.NewServer(store).Run(ctx, "ppa", plannercli.Version)
}
