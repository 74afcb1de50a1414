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
	"errors"
	"fmt"
	"os"

	"github.com/pkg/browser"
	"github.com/urfave/cli/v3"
)

var OpenFlag = &cli.BoolFlag{
	Name:  "open",
	Usage: "Open the plan file in the default browser after rendering",
}

// OpenPlanFile opens a saved plan document with the system handler.
func OpenPlanFile(path string) error {
	if path == "" {
		return errors.New("plan file path is required")
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("plan file not found: %w", err)
	}
	if err := browser.OpenFile(path); err != nil {
		return fmt.Errorf("failed to open plan file: %w", err)
	}
	return nil
}
