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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateSprintCount(t *testing.T) {
	assert.Equal(t, 2, EstimateSprintCount(HorizonMonth))
	assert.Equal(t, 6, EstimateSprintCount(HorizonQuarter))
	assert.Equal(t, 12, EstimateSprintCount(HorizonHalfYear))
	assert.Equal(t, 24, EstimateSprintCount(HorizonYear))
	assert.Equal(t, 4, EstimateSprintCount(TimeHorizon("decade")))
}

func makeTasks(n int) []*Task {
	tasks := make([]*Task, n)
	for i := range tasks {
		tasks[i] = &Task{ID: fmt.Sprintf("TASK-%d", i+1)}
	}
	return tasks
}

func TestAllocateSprints(t *testing.T) {
	start := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	sprints := AllocateSprints(makeTasks(12), HorizonQuarter, start, 0)
	require.Len(t, sprints, 6)

	assert.Equal(t, "SPRINT-1", sprints[0].ID)
	assert.Equal(t, "Sprint 1", sprints[0].Name)
	assert.Equal(t, "2025-03-03", sprints[0].StartDate.String())
	assert.Equal(t, "2025-03-16", sprints[0].EndDate.String())
	assert.Equal(t, "2025-03-17", sprints[1].StartDate.String())

	// five tasks per sprint before spilling over
	assert.Len(t, sprints[0].TaskIDs, 5)
	assert.Len(t, sprints[1].TaskIDs, 5)
	assert.Len(t, sprints[2].TaskIDs, 2)
	assert.Empty(t, sprints[3].TaskIDs)

	assert.Equal(t, "Foundations and scaffolding.", sprints[0].Goal)
	assert.Equal(t, "Core planning and meeting capabilities.", sprints[1].Goal)
	assert.Empty(t, sprints[2].Goal)
}

func TestAllocateSprintsOverflow(t *testing.T) {
	start := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	sprints := AllocateSprints(makeTasks(30), HorizonMonth, start, 0)
	require.Len(t, sprints, 2)

	// the last sprint absorbs everything past capacity
	assert.Len(t, sprints[0].TaskIDs, 5)
	assert.Len(t, sprints[1].TaskIDs, 25)
}

func TestAllocateSprintsCustomLength(t *testing.T) {
	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	sprints := AllocateSprints(nil, HorizonMonth, start, 7)
	require.Len(t, sprints, 2)
	assert.Equal(t, "2025-06-02", sprints[0].StartDate.String())
	assert.Equal(t, "2025-06-08", sprints[0].EndDate.String())
	assert.Equal(t, "2025-06-09", sprints[1].StartDate.String())
}
