// Copyright 2024 Project Planner Agent Authors
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
	"os"
	"path/filepath"
	"testing"
)

func TestFileExists(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T) string
		dir      func(tmpDir string) string
		filename string
		expected bool
	}{
		{
			name: "regular file exists",
			setup: func(t *testing.T) string {
				tmpDir := t.TempDir()
				file := filepath.Join(tmpDir, "requirements.txt")
				if err := os.WriteFile(file, []byte("openai\n"), 0644); err != nil {
					t.Fatal(err)
				}
				return tmpDir
			},
			dir: func(tmpDir string) string {
				return tmpDir
			},
			filename: "requirements.txt",
			expected: true,
		},
		{
			name: "directory exists but should return false",
			setup: func(t *testing.T) string {
				tmpDir := t.TempDir()
				subDir := filepath.Join(tmpDir, ".venv")
				if err := os.Mkdir(subDir, 0755); err != nil {
					t.Fatal(err)
				}
				return tmpDir
			},
			dir: func(tmpDir string) string {
				return tmpDir
			},
			filename: ".venv",
			expected: false,
		},
		{
			name: "non-existent file",
			setup: func(t *testing.T) string {
				return t.TempDir()
			},
			dir: func(tmpDir string) string {
				return tmpDir
			},
			filename: "non-existent.txt",
			expected: false,
		},
		{
			name: "empty filename",
			setup: func(t *testing.T) string {
				return t.TempDir()
			},
			dir: func(tmpDir string) string {
				return tmpDir
			},
			filename: "",
			expected: false,
		},
		{
			name: "empty directory",
			setup: func(t *testing.T) string {
				tmpDir := t.TempDir()
				file := filepath.Join(tmpDir, "test.txt")
				if err := os.WriteFile(file, []byte("test"), 0644); err != nil {
					t.Fatal(err)
				}
				return tmpDir
			},
			dir: func(tmpDir string) string {
				return ""
			},
			filename: "test.txt",
			expected: false,
		},
		{
			name: "hidden file",
			setup: func(t *testing.T) string {
				tmpDir := t.TempDir()
				file := filepath.Join(tmpDir, ".env.local")
				if err := os.WriteFile(file, []byte("OPENAI_API_KEY=sk-test"), 0644); err != nil {
					t.Fatal(err)
				}
				return tmpDir
			},
			dir: func(tmpDir string) string {
				return tmpDir
			},
			filename: ".env.local",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := tt.setup(t)
			dir := tt.dir(tmpDir)

			result := FileExists(dir, tt.filename)
			if result != tt.expected {
				t.Errorf("FileExists(%q, %q) = %v, want %v", dir, tt.filename, result, tt.expected)
			}
		})
	}
}

func TestDirExists(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.Mkdir(filepath.Join(tmpDir, ".venv"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, "plan.json"), []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	if !DirExists(tmpDir, ".venv") {
		t.Error("DirExists should return true for an existing directory")
	}
	if DirExists(tmpDir, "plan.json") {
		t.Error("DirExists should return false for a regular file")
	}
	if DirExists(tmpDir, "missing") {
		t.Error("DirExists should return false for a missing path")
	}
}

func TestMoveDir(t *testing.T) {
	src := t.TempDir()
	if err := os.MkdirAll(filepath.Join(src, "data"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "data", "plan.json"), []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	dest := filepath.Join(t.TempDir(), "workspace")
	if err := MoveDir(src, dest); err != nil {
		t.Fatalf("MoveDir failed: %v", err)
	}

	if !FileExists(filepath.Join(dest, "data"), "plan.json") {
		t.Error("MoveDir should have relocated nested files")
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Error("MoveDir should remove the source directory")
	}
}
