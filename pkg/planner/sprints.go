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
	"fmt"
	"time"
)

const (
	DefaultSprintDays = 14

	// tasks per sprint before the allocator moves on to the next one
	sprintTaskCapacity = 5
)

// EstimateSprintCount maps a time horizon onto a number of two-week
// sprints.
func EstimateSprintCount(horizon TimeHorizon) int {
	switch horizon {
	case HorizonMonth:
		return 2
	case HorizonQuarter:
		return 6
	case HorizonHalfYear:
		return 12
	case HorizonYear:
		return 24
	default:
		return 4
	}
}

// AllocateSprints lays out time-boxed sprints starting at `start` and
// fills them with tasks in order. The first two sprints carry canned
// goals; later goals are left for the team to set.
func AllocateSprints(tasks []*Task, horizon TimeHorizon, start time.Time, sprintDays int) []*Sprint {
	total := EstimateSprintCount(horizon)
	if total == 0 {
		return nil
	}
	if sprintDays <= 0 {
		sprintDays = DefaultSprintDays
	}

	ids := &idGen{}
	sprints := make([]*Sprint, 0, total)
	for i := 0; i < total; i++ {
		begin := start.AddDate(0, 0, i*sprintDays)
		end := begin.AddDate(0, 0, sprintDays-1)
		sprints = append(sprints, &Sprint{
			ID:        ids.nextSprint(),
			Name:      fmt.Sprintf("Sprint %d", i+1),
			StartDate: NewDate(begin),
			EndDate:   NewDate(end),
			TaskIDs:   []string{},
		})
	}

	idx := 0
	for _, task := range tasks {
		sprints[idx].TaskIDs = append(sprints[idx].TaskIDs, task.ID)
		if len(sprints[idx].TaskIDs) >= sprintTaskCapacity && idx < total-1 {
			idx++
		}
	}

	sprints[0].Goal = "Foundations and scaffolding."
	if len(sprints) > 1 {
		sprints[1].Goal = "Core planning and meeting capabilities."
	}

	return sprints
}
