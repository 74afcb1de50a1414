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

package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapStrings(t *testing.T) {
	bins := []string{"python3", "pip3"}
	quoted := MapStrings(bins, WrapWith("\""))
	assert.Equal(t, []string{`"python3"`, `"pip3"`}, quoted)
	assert.Equal(t, `"python3", "pip3"`, strings.Join(quoted, ", "))

	upper := MapStrings([]string{"epic", "story"}, strings.ToUpper)
	assert.Equal(t, []string{"EPIC", "STORY"}, upper)
}

func TestEllipsizeTo(t *testing.T) {
	goal := "Core planning and meeting capabilities."
	assert.Equal(t, goal, EllipsizeTo(goal, 40), "short strings pass through")

	cut := EllipsizeTo(goal, 20)
	assert.Len(t, cut, 20)
	assert.Equal(t, "Core planning and...", cut)
}

func TestWrapToLines(t *testing.T) {
	vision := "A planning assistant that turns a product vision into epics, stories, and sprints"
	lines := WrapToLines(vision, 24)
	assert.Equal(t, []string{
		"A planning assistant",
		"that turns a product",
		"vision into epics,",
		"stories, and sprints",
	}, lines)
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 24)
	}

	assert.Empty(t, WrapToLines("   ", 10), "blank input wraps to nothing")
}
