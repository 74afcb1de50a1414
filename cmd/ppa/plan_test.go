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
	"testing"

	"github.com/urfave/cli/v3"
)

func TestCreatePlanEmptyVision(t *testing.T) {
	cmd := &cli.Command{
		Name:   "create",
		Action: createPlan,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name"},
			&cli.StringFlag{Name: "vision"},
			&cli.StringFlag{Name: "horizon"},
			&cli.BoolFlag{Name: "silent"},
		},
	}

	// a blank vision warns and exits cleanly, nothing to plan
	err := cmd.Run(context.Background(), []string{"create",
		"--name", "Demo", "--vision", "   ", "--horizon", "month", "--silent"})
	if err != nil {
		t.Errorf("an empty vision must not fail plan creation: %v", err)
	}
}
