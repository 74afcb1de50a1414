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

package manifest

import (
	"os"

	"github.com/pelletier/go-toml"
)

// Tool is the dependency manager a pyproject.toml is configured for.
type Tool string

const (
	ToolPoetry  Tool = "poetry"
	ToolUV      Tool = "uv"
	ToolPDM     Tool = "pdm"
	ToolHatch   Tool = "hatch"
	ToolUnknown Tool = ""
)

// AddCommand returns the command an operator uses to add dependencies
// through the detected tool.
func (t Tool) AddCommand() string {
	switch t {
	case ToolPoetry:
		return "poetry add"
	case ToolUV:
		return "uv add"
	case ToolPDM:
		return "pdm add"
	case ToolHatch:
		return "hatch dep add"
	default:
		return "your project tool"
	}
}

type Pyproject struct {
	Name           string
	RequiresPython string
	Dependencies   []string
	Tool           Tool
}

// ParsePyproject reads the fields of pyproject.toml the CLI cares about.
// Unknown or partial files parse into zero values rather than errors.
func ParsePyproject(path string) (*Pyproject, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	p := &Pyproject{}
	if project, ok := doc["project"].(map[string]any); ok {
		if name, ok := project["name"].(string); ok {
			p.Name = name
		}
		if rp, ok := project["requires-python"].(string); ok {
			p.RequiresPython = rp
		}
		if deps, ok := project["dependencies"].([]any); ok {
			for _, d := range deps {
				if s, ok := d.(string); ok {
					p.Dependencies = append(p.Dependencies, s)
				}
			}
		}
	}

	if tool, ok := doc["tool"].(map[string]any); ok {
		if _, hasPoetry := tool["poetry"]; hasPoetry {
			p.Tool = ToolPoetry
		}
		if _, hasPdm := tool["pdm"]; hasPdm {
			p.Tool = ToolPDM
		}
		if _, hasHatch := tool["hatch"]; hasHatch {
			p.Tool = ToolHatch
		}
		if _, hasUv := tool["uv"]; hasUv {
			p.Tool = ToolUV
		}
	}

	return p, nil
}
