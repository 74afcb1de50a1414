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
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePlan(t *testing.T) *Plan {
	t.Helper()
	epics, tasks := ParseOutline(sampleOutline)
	start := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	return &Plan{
		ID:          "PLAN-1",
		Name:        "Demo Plan",
		VisionText:  "Build a planning assistant.",
		TimeHorizon: HorizonQuarter,
		CreatedAt:   start,
		Epics:       epics,
		Sprints:     AllocateSprints(tasks, HorizonQuarter, start, 0),
	}
}

func TestStoreSaveLoad(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "data"))
	plan := samplePlan(t)

	path, err := store.Save(plan, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(store.DataDir, DefaultPlanFile), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "{\n  "), "plan files are indented JSON")
	assert.Contains(t, string(data), `"time_horizon": "quarter"`)
	assert.Contains(t, string(data), `"start_date": "2025-03-03"`)

	loaded, err := store.Load("")
	require.NoError(t, err)
	assert.Equal(t, plan.ID, loaded.ID)
	assert.Equal(t, plan.TimeHorizon, loaded.TimeHorizon)
	require.Len(t, loaded.Epics, len(plan.Epics))
	assert.Equal(t, plan.Epics[0].Stories[0].Tasks[0].ID, loaded.Epics[0].Stories[0].Tasks[0].ID)
	assert.Equal(t, plan.Sprints[0].StartDate.String(), loaded.Sprints[0].StartDate.String())
}

func TestStoreLoadMissing(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "data"))
	_, err := store.Load("")
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestStoreList(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "data"))

	plans, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, plans)

	plan := samplePlan(t)
	_, err = store.Save(plan, "alpha.json")
	require.NoError(t, err)
	plan2 := samplePlan(t)
	plan2.ID = "PLAN-2"
	_, err = store.Save(plan2, "beta.json")
	require.NoError(t, err)

	// non-plan files are skipped
	require.NoError(t, os.WriteFile(filepath.Join(store.DataDir, "notes.txt"), []byte("x"), 0644))

	plans, err = store.List()
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, "PLAN-1", plans[0].ID)
	assert.Equal(t, "PLAN-2", plans[1].ID)
}

func TestStoreUpdateTaskStatus(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "data"))
	plan := samplePlan(t)
	_, err := store.Save(plan, "")
	require.NoError(t, err)

	task, err := store.UpdateTaskStatus("", "TASK-2", StatusDone)
	require.NoError(t, err)
	assert.Equal(t, StatusDone, task.Status)

	// the change is persisted
	loaded, err := store.Load("")
	require.NoError(t, err)
	assert.Equal(t, StatusDone, loaded.FindTask("TASK-2").Status)
	assert.Equal(t, StatusPlanned, loaded.FindTask("TASK-1").Status)

	_, err = store.UpdateTaskStatus("", "TASK-999", StatusDone)
	assert.Error(t, err)
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("Done")
	require.NoError(t, err)
	assert.Equal(t, StatusDone, s)

	s, err = ParseStatus(" in_progress ")
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, s)

	_, err = ParseStatus("finished")
	assert.Error(t, err)
}
