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

// Package manifest locates and inspects the dependency manifests a Python
// agent workspace may carry. Exactly one manifest drives the setup flow,
// chosen in a fixed priority order: pyproject.toml before requirements.txt.
package manifest

import (
	"path/filepath"

	"github.com/vinvishak/Project-Planner-Agent/pkg/util"
)

type Kind string

const (
	KindPyproject    Kind = "pyproject"
	KindRequirements Kind = "requirements"
	KindNone         Kind = "none"
)

const (
	PyprojectFile    = "pyproject.toml"
	RequirementsFile = "requirements.txt"
)

type Manifest struct {
	Kind Kind
	Path string
}

// Detect returns the manifest that governs dir. The project-metadata file
// always wins over the plain requirements list.
func Detect(dir string) Manifest {
	if util.FileExists(dir, PyprojectFile) {
		return Manifest{Kind: KindPyproject, Path: filepath.Join(dir, PyprojectFile)}
	}
	if util.FileExists(dir, RequirementsFile) {
		return Manifest{Kind: KindRequirements, Path: filepath.Join(dir, RequirementsFile)}
	}
	return Manifest{Kind: KindNone}
}
