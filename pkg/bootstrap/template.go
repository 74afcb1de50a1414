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
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/moby/patternmatcher"

	"github.com/vinvishak/Project-Planner-Agent/pkg/util"
)

var defaultExcludePatterns = []string{
	".git",
	"node_modules",
	".venv",
	".env",
	".env.local",
}

// CloneTemplate clones the template repo into a scratch directory and
// copies it into dest with scratch files excluded, so the operator gets
// a clean tree with no history.
func CloneTemplate(ctx context.Context, url, dest string) error {
	if !CommandExists("git") {
		return fmt.Errorf("git is required to create an app from a template")
	}

	tempPath, _, cleanup := util.UseTempPath(dest)
	defer cleanup()

	cmd := exec.CommandContext(ctx, "git", "clone", "--depth=1", url, tempPath)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("could not clone template: %w", err)
	}
	return CopyProjectFiles(tempPath, dest, nil)
}

// CopyProjectFiles copies a project tree, skipping the default scratch
// patterns plus any extra excludes, and anything a .gitignore in the
// source root names.
func CopyProjectFiles(src, dest string, extraExcludes []string) error {
	excludes := append([]string{}, defaultExcludePatterns...)
	excludes = append(excludes, extraExcludes...)

	if gi, err := os.ReadFile(filepath.Join(src, ".gitignore")); err == nil {
		for _, line := range strings.Split(string(gi), "\n") {
			line = strings.TrimSpace(line)
			if line != "" && !strings.HasPrefix(line, "#") {
				excludes = append(excludes, line)
			}
		}
	}

	matcher, err := patternmatcher.New(excludes)
	if err != nil {
		return fmt.Errorf("failed to create pattern matcher: %w", err)
	}

	if err := os.MkdirAll(dest, 0755); err != nil {
		return err
	}

	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}

		if ignored, err := matcher.MatchesOrParentMatches(util.ToUnixPath(rel)); err != nil {
			return err
		} else if ignored {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		target := filepath.Join(dest, rel)
		if info.IsDir() {
			return os.MkdirAll(target, info.Mode().Perm())
		}
		return util.CopyFile(path, target)
	})
}
