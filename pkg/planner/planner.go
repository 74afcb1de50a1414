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

package planner

import (
	"context"
	"time"

	"github.com/vinvishak/Project-Planner-Agent/pkg/logger"
)

// fallbackOutline produces a single bare epic when the model is
// unavailable, so plan creation never fails outright.
const fallbackOutline = "Epics:\n1. Initial Project Planning"

// OutlineGenerator produces a plain-text epic/story outline for a
// product vision.
type OutlineGenerator interface {
	GenerateOutline(ctx context.Context, visionText string) (string, error)
}

type Options struct {
	SprintDays int
	Now        func() time.Time
}

// CreatePlanFromVision asks gen for an outline, parses it into epics
// and tasks, and lays the tasks out across sprints. Generation failures
// degrade to a minimal single-epic plan rather than an error.
func CreatePlanFromVision(ctx context.Context, gen OutlineGenerator, name, visionText string, horizon TimeHorizon, opts Options) *Plan {
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	outline, err := gen.GenerateOutline(ctx, visionText)
	if err != nil {
		logger.Warnw("outline generation failed, falling back to a minimal single-epic plan", err)
		outline = fallbackOutline
	}

	epics, tasks := ParseOutline(outline)
	logger.Infow("outline parsed", "epics", len(epics), "tasks", len(tasks))

	sprints := AllocateSprints(tasks, horizon, now(), opts.SprintDays)

	return &Plan{
		ID:          "PLAN-1",
		Name:        name,
		VisionText:  visionText,
		TimeHorizon: horizon,
		CreatedAt:   now().UTC(),
		Epics:       epics,
		Sprints:     sprints,
	}
}
