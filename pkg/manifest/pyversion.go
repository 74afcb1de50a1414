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
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var pythonVersionPattern = regexp.MustCompile(`(\d+\.\d+(?:\.\d+)?)`)

// ParseInterpreterVersion extracts the version from `python --version`
// output, e.g. "Python 3.11.4".
func ParseInterpreterVersion(output string) (string, error) {
	m := pythonVersionPattern.FindStringSubmatch(strings.TrimSpace(output))
	if m == nil {
		return "", fmt.Errorf("unrecognized interpreter version output: %q", output)
	}
	return m[1], nil
}

// CheckPythonVersion reports whether version satisfies a requires-python
// constraint such as ">=3.9,<4".
func CheckPythonVersion(constraint, version string) (bool, error) {
	if constraint == "" {
		return true, nil
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("invalid requires-python constraint %q: %w", constraint, err)
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return false, fmt.Errorf("invalid interpreter version %q: %w", version, err)
	}
	return c.Check(v), nil
}
