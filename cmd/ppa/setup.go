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
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/vinvishak/Project-Planner-Agent/pkg/bootstrap"
	"github.com/vinvishak/Project-Planner-Agent/pkg/logger"
	"github.com/vinvishak/Project-Planner-Agent/pkg/manifest"
	"github.com/vinvishak/Project-Planner-Agent/pkg/util"
)

var SetupCommands = []*cli.Command{
	{
		Name:      "setup",
		Usage:     "Activate the workspace virtualenv and install its dependencies",
		UsageText: "ppa setup [--venv DIR]",
		Action:    setupWorkspace,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "venv",
				Usage: "Virtualenv `DIR` inside the workspace",
				Value: bootstrap.VenvDir,
			},
		},
	},
}

func setupWorkspace(ctx context.Context, cmd *cli.Command) error {
	venvDir := cmd.String("venv")

	var missing []string
	for _, bin := range bootstrap.DefaultPythonBootstrapComponent.Requires {
		if !bootstrap.CommandExists(bin) {
			missing = append(missing, bin)
		}
	}
	if len(missing) > 0 {
		fmt.Println("WARNING: not found on PATH: " +
			strings.Join(util.MapStrings(missing, util.WrapWith("\"")), ", "))
	}

	res, err := bootstrap.SetupWorkspace(ctx, bootstrap.SetupOpts{
		Dir:     workingDir,
		VenvDir: venvDir,
	})
	if errors.Is(err, bootstrap.ErrVenvMissing) {
		return cli.Exit(fmt.Sprintf(
			"No virtual environment found in %s.\nCreate one first:\n\n\t%s\n\nthen re-run `ppa setup`.",
			workingDir, util.Accented(bootstrap.ActivationInstruction(venvDir)),
		), 1)
	}
	if err != nil {
		// pip's own exit status is the setup exit status
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return cli.Exit(fmt.Sprintf("Dependency installation failed: %v", err), exitErr.ExitCode())
		}
		return cli.Exit(err.Error(), 1)
	}

	fmt.Println("Activated virtual environment at [" + util.Accented(res.Env.BinDir()) + "]")

	switch res.Manifest.Kind {
	case manifest.KindPyproject:
		printPyprojectGuidance(ctx, res)
	case manifest.KindRequirements:
		fmt.Printf("Installed %d dependencies from [%s]\n",
			len(res.Requirements), util.Accented(res.Manifest.Path))
	case manifest.KindNone:
		fmt.Println("WARNING: no pyproject.toml or requirements.txt found, nothing to install")
	}

	return nil
}

// printPyprojectGuidance explains that the project tool owns dependency
// management. The interpreter check is advisory, it never fails setup.
func printPyprojectGuidance(ctx context.Context, res *bootstrap.SetupResult) {
	p := res.Pyproject
	name := p.Name
	if name == "" {
		name = "this project"
	}
	fmt.Printf("Found pyproject.toml for [%s]\n", util.Accented(name))
	if len(p.Dependencies) > 0 {
		fmt.Printf("%d dependencies declared, managed by the project tool. Add more with:\n", len(p.Dependencies))
	} else {
		fmt.Println("Dependencies are managed by the project tool, add them with:")
	}
	fmt.Println("\t" + util.Accented(p.Tool.AddCommand()+" <package>"))

	if p.RequiresPython == "" {
		return
	}
	version, err := res.Env.PythonVersion(ctx)
	if err != nil {
		logger.Debugw("could not determine interpreter version", "error", err)
		return
	}
	ok, err := manifest.CheckPythonVersion(p.RequiresPython, version)
	if err != nil {
		logger.Debugw("could not evaluate requires-python", "error", err)
		return
	}
	if !ok {
		fmt.Printf("WARNING: interpreter %s does not satisfy requires-python %q\n",
			version, p.RequiresPython)
	}
}
