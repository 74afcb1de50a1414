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
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinvishak/Project-Planner-Agent/pkg/manifest"
)

func newWorkspace(t *testing.T, withVenv bool, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	if withVenv {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, VenvDir, "bin"), 0755))
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

type recordingRunner struct {
	calls []string
	err   error
}

func (r *recordingRunner) run(cmd *exec.Cmd) error {
	r.calls = append(r.calls, strings.Join(cmd.Args, " "))
	return r.err
}

func TestActivateVenvMissing(t *testing.T) {
	dir := newWorkspace(t, false, nil)
	_, err := ActivateVenv(dir, "")
	assert.ErrorIs(t, err, ErrVenvMissing)

	// a file named like the venv does not count
	require.NoError(t, os.WriteFile(filepath.Join(dir, VenvDir), []byte("x"), 0644))
	_, err = ActivateVenv(dir, "")
	assert.ErrorIs(t, err, ErrVenvMissing)
}

func TestActivateVenvEnviron(t *testing.T) {
	dir := newWorkspace(t, true, nil)
	env, err := ActivateVenv(dir, "")
	require.NoError(t, err)

	var path, virtualEnv string
	for _, kv := range env.Environ() {
		key, value, _ := strings.Cut(kv, "=")
		switch key {
		case "PATH":
			path = value
		case "VIRTUAL_ENV":
			virtualEnv = value
		case "PYTHONHOME":
			t.Errorf("PYTHONHOME must be cleared, got %q", value)
		}
	}
	assert.Equal(t, filepath.Join(dir, VenvDir), virtualEnv)
	assert.True(t, strings.HasPrefix(path, env.BinDir()), "venv bin dir must lead PATH")
}

func TestSetupWorkspaceVenvMissing(t *testing.T) {
	dir := newWorkspace(t, false, map[string]string{
		manifest.RequirementsFile: "openai\n",
	})
	runner := &recordingRunner{}

	_, err := SetupWorkspace(context.Background(), SetupOpts{Dir: dir, Run: runner.run})
	assert.ErrorIs(t, err, ErrVenvMissing)
	assert.Empty(t, runner.calls, "nothing may run before activation succeeds")
}

func TestSetupWorkspacePyproject(t *testing.T) {
	dir := newWorkspace(t, true, map[string]string{
		manifest.PyprojectFile:    "[project]\nname = \"demo\"\n\n[tool.uv]\n",
		manifest.RequirementsFile: "openai\n",
	})
	runner := &recordingRunner{}

	res, err := SetupWorkspace(context.Background(), SetupOpts{Dir: dir, Run: runner.run})
	require.NoError(t, err)
	assert.Equal(t, manifest.KindPyproject, res.Manifest.Kind)
	require.NotNil(t, res.Pyproject)
	assert.Equal(t, "demo", res.Pyproject.Name)
	assert.Equal(t, manifest.ToolUV, res.Pyproject.Tool)

	// the project tool owns installation
	assert.False(t, res.Installed)
	assert.Empty(t, runner.calls)
}

func TestSetupWorkspaceRequirements(t *testing.T) {
	dir := newWorkspace(t, true, map[string]string{
		manifest.RequirementsFile: "openai\nrequests\n",
	})
	runner := &recordingRunner{}

	res, err := SetupWorkspace(context.Background(), SetupOpts{Dir: dir, Run: runner.run})
	require.NoError(t, err)
	assert.Equal(t, manifest.KindRequirements, res.Manifest.Kind)
	assert.Equal(t, []string{"openai", "requests"}, res.Requirements)
	assert.True(t, res.Installed)

	require.Len(t, runner.calls, 1, "pip must run exactly once")
	assert.Contains(t, runner.calls[0], "pip3 install -r")
	assert.Contains(t, runner.calls[0], manifest.RequirementsFile)
}

func TestSetupWorkspaceInstallFailure(t *testing.T) {
	dir := newWorkspace(t, true, map[string]string{
		manifest.RequirementsFile: "no-such-package\n",
	})
	installErr := errors.New("pip exited with status 1")
	runner := &recordingRunner{err: installErr}

	res, err := SetupWorkspace(context.Background(), SetupOpts{Dir: dir, Run: runner.run})
	assert.ErrorIs(t, err, installErr)
	require.NotNil(t, res)
	assert.False(t, res.Installed)
	assert.Len(t, runner.calls, 1)
}

func TestSetupWorkspaceNoManifest(t *testing.T) {
	dir := newWorkspace(t, true, nil)
	runner := &recordingRunner{}

	res, err := SetupWorkspace(context.Background(), SetupOpts{Dir: dir, Run: runner.run})
	require.NoError(t, err)
	assert.Equal(t, manifest.KindNone, res.Manifest.Kind)
	assert.False(t, res.Installed)
	assert.Empty(t, runner.calls)
}

func TestSetupWorkspaceIdempotent(t *testing.T) {
	dir := newWorkspace(t, true, map[string]string{
		manifest.RequirementsFile: "openai\n",
	})
	runner := &recordingRunner{}

	for i := 0; i < 3; i++ {
		res, err := SetupWorkspace(context.Background(), SetupOpts{Dir: dir, Run: runner.run})
		require.NoError(t, err)
		assert.True(t, res.Installed)
	}
	// each run performs its single install; the workspace itself is untouched
	assert.Len(t, runner.calls, 3)

	data, err := os.ReadFile(filepath.Join(dir, manifest.RequirementsFile))
	require.NoError(t, err)
	assert.Equal(t, "openai\n", string(data))
}

func TestCopyProjectFiles(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, ".git", "objects"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(src, "app"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(src, ".git", "HEAD"), []byte("ref"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(src, ".env"), []byte("SECRET=x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(src, ".env.example"), []byte("SECRET="), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "app", "main.py"), []byte("print()"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(src, ".gitignore"), []byte("*.log\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "debug.log"), []byte("x"), 0644))

	dest := filepath.Join(t.TempDir(), "app-copy")
	require.NoError(t, CopyProjectFiles(src, dest, nil))

	assert.FileExists(t, filepath.Join(dest, "app", "main.py"))
	assert.FileExists(t, filepath.Join(dest, ".gitignore"))
	assert.FileExists(t, filepath.Join(dest, ".env.example"), "dotenv templates must survive the copy")
	assert.NoFileExists(t, filepath.Join(dest, ".env"))
	assert.NoFileExists(t, filepath.Join(dest, "debug.log"))
	assert.NoDirExists(t, filepath.Join(dest, ".git"))
}
