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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleOutline = `Epics:
1. Core Planning Engine
   - Turn a product vision into a structured plan.
   Stories:
   - Story: Generate epics from a vision
     Description: As a user, I want epics derived from my vision text.
     Acceptance criteria:
       - At least one epic is produced
       - Epics carry titles and descriptions
   - Story: Break epics into stories
     Description: Each epic is split into actionable stories.
     Acceptance criteria:
       - Every epic has at least one story
       - Stories carry acceptance criteria

2. Persistence
   - Store plans on disk for later inspection.
   Stories:
   - Story: Save plans as JSON
     Description: Plans survive process restarts.
     Acceptance criteria:
       - A saved plan can be reloaded unchanged
       - Files are human readable
`

func TestParseOutline(t *testing.T) {
	epics, tasks := ParseOutline(sampleOutline)
	require.Len(t, epics, 2)

	first := epics[0]
	assert.Equal(t, "EPIC-1", first.ID)
	assert.Equal(t, "Core Planning Engine", first.Title)
	assert.Equal(t, "Turn a product vision into a structured plan.", first.Description)
	assert.Equal(t, PriorityHigh, first.Priority)
	assert.Equal(t, StatusPlanned, first.Status)
	require.Len(t, first.Stories, 2)

	story := first.Stories[0]
	assert.Equal(t, "STORY-1", story.ID)
	assert.Equal(t, "EPIC-1", story.EpicID)
	assert.Equal(t, "Generate epics from a vision", story.Title)
	assert.Equal(t, "As a user, I want epics derived from my vision text.", story.Description)
	assert.Equal(t, []string{
		"At least one epic is produced",
		"Epics carry titles and descriptions",
	}, story.AcceptanceCriteria)

	second := epics[1]
	assert.Equal(t, "EPIC-2", second.ID)
	assert.Equal(t, "Persistence", second.Title)
	require.Len(t, second.Stories, 1)
	assert.Equal(t, "STORY-3", second.Stories[0].ID)

	// three stories, three tasks each
	require.Len(t, tasks, 9)
}

func TestParseOutlineTaskGeneration(t *testing.T) {
	epics, tasks := ParseOutline(sampleOutline)
	story := epics[0].Stories[0]
	require.Len(t, story.Tasks, 3)

	setup, impl, validate := story.Tasks[0], story.Tasks[1], story.Tasks[2]

	assert.Equal(t, "TASK-1", setup.ID)
	assert.Equal(t, story.ID, setup.StoryID)
	assert.Equal(t, "Setup for: "+story.Title, setup.Title)
	assert.Equal(t, "S", setup.Estimate)
	assert.Equal(t, []string{"setup"}, setup.Labels)

	assert.Equal(t, "Implement: "+story.Title, impl.Title)
	assert.Equal(t, "M", impl.Estimate)
	assert.Equal(t, []string{"implementation"}, impl.Labels)

	assert.Equal(t, "Validate: "+story.Title, validate.Title)
	assert.Equal(t, "S", validate.Estimate)
	assert.Equal(t, []string{"testing"}, validate.Labels)

	for _, task := range tasks {
		assert.Equal(t, StatusPlanned, task.Status)
	}
}

func TestParseOutlineFallback(t *testing.T) {
	epics, tasks := ParseOutline("complete gibberish, no structure at all")
	require.Len(t, epics, 1)
	require.Len(t, tasks, 1)

	epic := epics[0]
	assert.Equal(t, "EPIC-1", epic.ID)
	assert.Equal(t, "Initial Project Planning", epic.Title)
	assert.Equal(t, PriorityMedium, epic.Priority)
	require.Len(t, epic.Stories, 1)
	assert.Equal(t, []string{"fallback"}, tasks[0].Labels)
}

func TestParseOutlineStoryDirectlyAfterEpic(t *testing.T) {
	// A story header right after an epic title opens a story even though
	// no epic description bullet came first; the description stays empty.
	epics, tasks := ParseOutline("Epics:\n1. Alpha\n   - Story: First story\n")
	require.Len(t, epics, 1)
	assert.Empty(t, epics[0].Description)
	require.Len(t, epics[0].Stories, 1)
	assert.Equal(t, "First story", epics[0].Stories[0].Title)
	assert.Len(t, tasks, 3)
}

func TestParseOutlineBareEpic(t *testing.T) {
	// The degraded generation path produces a single epic heading with
	// no stories: it must parse into an empty epic, not the fallback.
	epics, tasks := ParseOutline("Epics:\n1. Initial Project Planning")
	require.Len(t, epics, 1)
	assert.Equal(t, "Initial Project Planning", epics[0].Title)
	assert.Empty(t, epics[0].Stories)
	assert.Empty(t, tasks)
}
