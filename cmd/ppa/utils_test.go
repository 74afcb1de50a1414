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

package main

import (
	"testing"
	"time"

	"github.com/urfave/cli/v3"
)

func TestTemplateFileFlag(t *testing.T) {
	var dest string
	v := templateStringValue{}.Create("plan.json", &dest, cli.StringConfig{})
	if dest != "plan.json" {
		t.Errorf("plain filenames must pass through unchanged, got %q", dest)
	}

	if err := v.Set("plan-%Y.json"); err != nil {
		t.Fatal(err)
	}
	want := "plan-" + time.Now().UTC().Format("2006") + ".json"
	if dest != want {
		t.Errorf("expected %q, got %q", want, dest)
	}
}
