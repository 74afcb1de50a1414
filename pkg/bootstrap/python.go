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

package bootstrap

type Target string

const (
	TargetPython Target = "python"
)

// BootstrapConfig describes how a workspace target is prepared: the
// binaries it requires on PATH and the commands that install and run it.
type BootstrapConfig struct {
	Target     Target   `yaml:"target"`
	Requires   []string `yaml:"requires"`
	Install    []string `yaml:"install"`
	InstallWin []string `yaml:"install_win"`
	Dev        []string `yaml:"dev"`
}

var (
	DefaultPythonBootstrapComponent = &BootstrapConfig{
		Target:   TargetPython,
		Requires: []string{"python3", "pip3"},
		Install: []string{
			"python3 -m venv .venv",
			"bash -c \"source .venv/bin/activate\"",
			"pip3 install -r requirements.txt",
		},
		InstallWin: []string{
			"python3 -m venv .venv",
			"powershell .\\.venv\\bin\\Activate.ps1",
			"pip3 install -r requirements.txt",
		},
		Dev: []string{"python3 -m app.main"},
	}
)
