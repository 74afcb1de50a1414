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

package mcp

import (
	"context"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/vinvishak/Project-Planner-Agent/pkg/planner"
)

type GetPlanInput struct {
	PlanFile string `json:"plan_file,omitempty" jsonschema:"plan filename under the data directory, defaults to plan.json"`
}

type GetPlanOutput struct {
	Plan *planner.Plan `json:"plan"`
}

func (s *Server) getPlan(ctx context.Context, req *sdk.CallToolRequest, in GetPlanInput) (*sdk.CallToolResult, GetPlanOutput, error) {
	plan, err := s.store.Load(in.PlanFile)
	if err != nil {
		return nil, GetPlanOutput{}, err
	}
	return nil, GetPlanOutput{Plan: plan}, nil
}

type ListTasksInput struct {
	PlanFile string `json:"plan_file,omitempty" jsonschema:"plan filename under the data directory, defaults to plan.json"`
	Status   string `json:"status,omitempty" jsonschema:"filter by status: planned, in_progress, or done"`
}

type ListTasksOutput struct {
	Tasks []*planner.Task `json:"tasks"`
	Count int             `json:"count"`
}

func (s *Server) listTasks(ctx context.Context, req *sdk.CallToolRequest, in ListTasksInput) (*sdk.CallToolResult, ListTasksOutput, error) {
	plan, err := s.store.Load(in.PlanFile)
	if err != nil {
		return nil, ListTasksOutput{}, err
	}

	tasks := plan.Tasks()
	if in.Status != "" {
		status, err := planner.ParseStatus(in.Status)
		if err != nil {
			return nil, ListTasksOutput{}, err
		}
		filtered := tasks[:0]
		for _, t := range tasks {
			if t.Status == status {
				filtered = append(filtered, t)
			}
		}
		tasks = filtered
	}

	return nil, ListTasksOutput{Tasks: tasks, Count: len(tasks)}, nil
}

type UpdateTaskStatusInput struct {
	PlanFile string `json:"plan_file,omitempty" jsonschema:"plan filename under the data directory, defaults to plan.json"`
	TaskID   string `json:"task_id" jsonschema:"id of the task to update, e.g. TASK-3"`
	Status   string `json:"status" jsonschema:"new status: planned, in_progress, or done"`
}

type UpdateTaskStatusOutput struct {
	Task *planner.Task `json:"task"`
}

func (s *Server) updateTaskStatus(ctx context.Context, req *sdk.CallToolRequest, in UpdateTaskStatusInput) (*sdk.CallToolResult, UpdateTaskStatusOutput, error) {
	status, err := planner.ParseStatus(in.Status)
	if err != nil {
		return nil, UpdateTaskStatusOutput{}, err
	}

	task, err := s.store.UpdateTaskStatus(in.PlanFile, in.TaskID, status)
	if err != nil {
		return nil, UpdateTaskStatusOutput{}, err
	}
	return nil, UpdateTaskStatusOutput{Task: task}, nil
}
