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
	"regexp"
	"strings"
)

var epicHeadingPattern = regexp.MustCompile(`^\d+\.\s+`)

type idGen struct {
	epic   int
	story  int
	task   int
	sprint int
}

func (g *idGen) nextEpic() string {
	g.epic++
	return fmt.Sprintf("EPIC-%d", g.epic)
}

func (g *idGen) nextStory() string {
	g.story++
	return fmt.Sprintf("STORY-%d", g.story)
}

func (g *idGen) nextTask() string {
	g.task++
	return fmt.Sprintf("TASK-%d", g.task)
}

func (g *idGen) nextSprint() string {
	g.sprint++
	return fmt.Sprintf("SPRINT-%d", g.sprint)
}

// ParseOutline turns the model's plain-text outline into epics with
// stories and auto-generated tasks. The format is line oriented:
//
//	Epics:
//	1. Epic title
//	   - Epic description
//	   Stories:
//	   - Story: Story title
//	     Description: ...
//	     Acceptance criteria:
//	       - ...
//
// Malformed lines are skipped rather than rejected; if nothing parses,
// a minimal fallback epic is produced so a plan always exists.
func ParseOutline(outline string) ([]*Epic, []*Task) {
	ids := &idGen{}

	var (
		epics              []*Epic
		currentEpic        *Epic
		currentStory       *Story
		criteria           []string
		collectingCriteria bool
		afterEpicTitle     bool
	)

	closeStory := func() {
		if currentStory == nil {
			return
		}
		currentStory.AcceptanceCriteria = criteria
		criteria = nil
		collectingCriteria = false
		if currentEpic != nil {
			currentEpic.Stories = append(currentEpic.Stories, currentStory)
		}
		currentStory = nil
	}

	for _, raw := range strings.Split(outline, "\n") {
		line := strings.TrimSpace(raw)

		switch {
		case epicHeadingPattern.MatchString(line):
			closeStory()
			if currentEpic != nil {
				epics = append(epics, currentEpic)
			}
			_, title, _ := strings.Cut(line, ".")
			currentEpic = &Epic{
				ID:       ids.nextEpic(),
				Title:    strings.TrimSpace(title),
				Priority: PriorityHigh,
				Status:   StatusPlanned,
			}
			afterEpicTitle = true

		case strings.HasPrefix(line, "- Story:"):
			closeStory()
			currentStory = &Story{
				ID:       ids.nextStory(),
				Title:    strings.TrimSpace(strings.TrimPrefix(line, "- Story:")),
				Priority: PriorityMedium,
				Status:   StatusPlanned,
			}
			if currentEpic != nil {
				currentStory.EpicID = currentEpic.ID
			}

		case strings.HasPrefix(line, "Description:") && currentStory != nil:
			currentStory.Description = strings.TrimSpace(strings.TrimPrefix(line, "Description:"))

		case strings.HasPrefix(line, "Acceptance criteria:") && currentStory != nil:
			collectingCriteria = true
			criteria = nil

		case strings.HasPrefix(line, "- ") && afterEpicTitle && currentEpic != nil && currentStory == nil:
			currentEpic.Description = strings.TrimSpace(strings.TrimPrefix(line, "- "))
			afterEpicTitle = false

		case strings.HasPrefix(line, "-") && collectingCriteria && currentStory != nil:
			if c := strings.TrimSpace(strings.TrimLeft(line, "-")); c != "" {
				criteria = append(criteria, c)
			}
		}
	}

	closeStory()
	if currentEpic != nil {
		epics = append(epics, currentEpic)
	}

	var allTasks []*Task
	for _, epic := range epics {
		for _, story := range epic.Stories {
			story.Tasks = generateTasks(ids, story)
			allTasks = append(allTasks, story.Tasks...)
		}
	}

	if len(epics) == 0 {
		epics, allTasks = fallbackEpic(ids)
	}

	return epics, allTasks
}

// generateTasks creates the standard setup/implement/validate triple
// for a story.
func generateTasks(ids *idGen, story *Story) []*Task {
	return []*Task{
		{
			ID:          ids.nextTask(),
			StoryID:     story.ID,
			Title:       "Setup for: " + story.Title,
			Description: "Create scaffolding, directories, configs, and basic wiring needed for this story.",
			Estimate:    "S",
			Status:      StatusPlanned,
			Labels:      []string{"setup"},
		},
		{
			ID:          ids.nextTask(),
			StoryID:     story.ID,
			Title:       "Implement: " + story.Title,
			Description: "Implement the main logic to satisfy this story.",
			Estimate:    "M",
			Status:      StatusPlanned,
			Labels:      []string{"implementation"},
		},
		{
			ID:          ids.nextTask(),
			StoryID:     story.ID,
			Title:       "Validate: " + story.Title,
			Description: "Test and verify that all acceptance criteria are met.",
			Estimate:    "S",
			Status:      StatusPlanned,
			Labels:      []string{"testing"},
		},
	}
}

func fallbackEpic(ids *idGen) ([]*Epic, []*Task) {
	epic := &Epic{
		ID:          ids.nextEpic(),
		Title:       "Initial Project Planning",
		Description: "Fallback epic generated when outline parsing fails.",
		Priority:    PriorityMedium,
		Status:      StatusPlanned,
	}
	story := &Story{
		ID:                 ids.nextStory(),
		EpicID:             epic.ID,
		Title:              "Create initial project plan",
		Description:        "As a user, I want an initial project plan from my vision.",
		AcceptanceCriteria: []string{"Plan has at least one epic, story, and task."},
		Priority:           PriorityMedium,
		Status:             StatusPlanned,
	}
	task := &Task{
		ID:          ids.nextTask(),
		StoryID:     story.ID,
		Title:       "Draft initial project structure",
		Description: "Manually define epics, stories, and tasks based on the vision.",
		Estimate:    "M",
		Status:      StatusPlanned,
		Labels:      []string{"fallback"},
	}
	story.Tasks = []*Task{task}
	epic.Stories = []*Story{story}
	return []*Epic{epic}, []*Task{task}
}
