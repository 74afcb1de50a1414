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

package llm

import "fmt"

const outlineSystemPrompt = "You are a senior product manager. " +
	"Given a product vision, you design a clear project structure with epics " +
	"and user stories in a consistent outline format."

// The outline contract is load bearing: the parser keys on these exact
// headings, so keep them in sync with the planner package.
const outlineUserPromptFormat = `
VISION:
"""%s"""

Return an outline in EXACTLY this style:

Epics:
1. <Epic title>
   - <One-line epic description>
   Stories:
   - Story: <Story title>
     Description: <one or two sentences>
     Acceptance criteria:
       - <criterion 1>
       - <criterion 2>
       - <criterion 3>

2. <Next epic title>
   - <One-line epic description>
   Stories:
   - Story: <Story title>
     Description: <one or two sentences>
     Acceptance criteria:
       - <criterion 1>
       - <criterion 2>

Rules:
- Include 3-7 epics.
- Each epic must have at least 1 story.
- Each story must have at least 2 acceptance criteria.
- Use exactly these headings: 'Epics:', 'Stories:', 'Story:', 'Description:', 'Acceptance criteria:'.
- Use '-' bullet points for acceptance criteria.
- Do NOT use JSON.
- Do NOT add explanations before or after the outline.
`

func outlineUserPrompt(visionText string) string {
	return fmt.Sprintf(outlineUserPromptFormat, visionText)
}
