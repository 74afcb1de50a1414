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

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/vinvishak/Project-Planner-Agent/pkg/manifest"
)

const VenvDir = ".venv"

var ErrVenvMissing = errors.New("virtual environment not found")

// ActivationInstruction is what the operator must run before setup can
// proceed when no virtual environment exists.
func ActivationInstruction(venvDir string) string {
	return fmt.Sprintf("python3 -m venv %s", venvDir)
}

// Env is an activated virtual environment. Commands built from it run
// with the venv's interpreter and tools first on PATH, the same effect
// as sourcing the activate script.
type Env struct {
	Root     string
	venvPath string
}

// ActivateVenv checks that root contains a virtual environment directory
// and returns an activated Env. A missing or non-directory venv is
// ErrVenvMissing; setup cannot continue without it.
func ActivateVenv(root, venvDir string) (*Env, error) {
	if venvDir == "" {
		venvDir = VenvDir
	}
	venvPath := filepath.Join(root, venvDir)
	info, err := os.Stat(venvPath)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w at %s", ErrVenvMissing, venvPath)
	}
	return &Env{Root: root, venvPath: venvPath}, nil
}

// BinDir returns the venv's executable directory.
func (e *Env) BinDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(e.venvPath, "Scripts")
	}
	return filepath.Join(e.venvPath, "bin")
}

// Environ returns the process environment with the venv activated:
// VIRTUAL_ENV set, the venv bin directory first on PATH, and
// PYTHONHOME cleared.
func (e *Env) Environ() []string {
	env := make([]string, 0, len(os.Environ())+2)
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		switch key {
		case "VIRTUAL_ENV", "PYTHONHOME":
			continue
		case "PATH":
			env = append(env, "PATH="+e.BinDir()+string(os.PathListSeparator)+kv[len("PATH="):])
		default:
			env = append(env, kv)
		}
	}
	env = append(env, "VIRTUAL_ENV="+e.venvPath)
	return env
}

// Command builds a command that runs inside the activated environment,
// rooted at the workspace directory.
func (e *Env) Command(ctx context.Context, name string, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = e.Root
	cmd.Env = e.Environ()
	return cmd
}

// PythonVersion reports the interpreter version inside the venv.
func (e *Env) PythonVersion(ctx context.Context) (string, error) {
	out, err := e.Command(ctx, "python3", "--version").CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("could not query interpreter version: %w", err)
	}
	return manifest.ParseInterpreterVersion(string(out))
}

// Runner executes a prepared command. Tests inject one to observe the
// install step without shelling out.
type Runner func(cmd *exec.Cmd) error

func defaultRunner(cmd *exec.Cmd) error {
	return cmd.Run()
}

// InstallDependencies runs a single pip install against the given
// requirements file, streaming output to the operator.
func InstallDependencies(ctx context.Context, env *Env, requirementsPath string, run Runner) error {
	if run == nil {
		run = defaultRunner
	}
	cmd := env.Command(ctx, "pip3", "install", "-r", requirementsPath)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return run(cmd)
}

type SetupOpts struct {
	Dir     string
	VenvDir string
	Run     Runner
}

type SetupResult struct {
	Env          *Env
	Manifest     manifest.Manifest
	Pyproject    *manifest.Pyproject
	Requirements []string
	Installed    bool
}

// SetupWorkspace prepares a Python workspace for development. It
// activates the virtual environment, then resolves dependencies from
// whichever manifest governs the directory:
//
//   - pyproject.toml: the project tool owns installation, so setup only
//     inspects the manifest and leaves guidance to the caller
//   - requirements.txt: pip installs it, exactly once
//   - neither: nothing to install
//
// Running it again against an unchanged workspace repeats the same
// decisions; it never mutates the manifests it reads.
func SetupWorkspace(ctx context.Context, opts SetupOpts) (*SetupResult, error) {
	env, err := ActivateVenv(opts.Dir, opts.VenvDir)
	if err != nil {
		return nil, err
	}

	res := &SetupResult{
		Env:      env,
		Manifest: manifest.Detect(opts.Dir),
	}

	switch res.Manifest.Kind {
	case manifest.KindPyproject:
		p, err := manifest.ParsePyproject(res.Manifest.Path)
		if err != nil {
			return nil, err
		}
		res.Pyproject = p
	case manifest.KindRequirements:
		reqs, err := manifest.ParseRequirements(res.Manifest.Path)
		if err != nil {
			return res, err
		}
		res.Requirements = reqs
		if err := InstallDependencies(ctx, env, res.Manifest.Path, opts.Run); err != nil {
			return res, err
		}
		res.Installed = true
	}

	return res, nil
}
