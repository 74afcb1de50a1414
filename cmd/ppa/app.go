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
	"os"
	"regexp"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/vinvishak/Project-Planner-Agent/pkg/bootstrap"
	"github.com/vinvishak/Project-Planner-Agent/pkg/config"
	"github.com/vinvishak/Project-Planner-Agent/pkg/util"
)

var (
	templateName string
	templateURL  string
	appNameRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_-]*$`)

	templateFlag = &cli.StringFlag{
		Name:        "template",
		Usage:       "`TEMPLATE` to instantiate, see " + bootstrap.TemplateIndexURL,
		Destination: &templateName,
	}
	templateURLFlag = &cli.StringFlag{
		Name:        "template-url",
		Usage:       "`URL` to instantiate, must contain a taskfile.yaml",
		Destination: &templateURL,
	}

	AppCommands = []*cli.Command{
		{
			Name:  "app",
			Usage: "Bootstrap planner agent applications from templates",
			Commands: []*cli.Command{
				{
					Name:      "create",
					Usage:     "Bootstrap a new application from a template or through guided creation",
					UsageText: "ppa app create APP_NAME [--template NAME | --template-url URL]",
					ArgsUsage: "APP_NAME",
					Action:    createApp,
					Flags: []cli.Flag{
						templateFlag,
						templateURLFlag,
						silentFlag,
					},
				},
				{
					Name:      "list-templates",
					Usage:     "List available application templates",
					UsageText: "ppa app list-templates",
					Action:    listTemplates,
					Flags:     []cli.Flag{jsonFlag},
				},
			},
		},
	}
)

func createApp(ctx context.Context, cmd *cli.Command) error {
	pc, err := loadProjectDetails(cmd)
	if err != nil {
		return err
	}

	var prompts []huh.Field

	appName := cmd.Args().First()
	if appName == "" {
		prompts = append(prompts, huh.NewInput().
			Title("Application Name").
			Placeholder("my-planner-app").
			Value(&appName).
			Validate(func(s string) error {
				if len(s) < 3 {
					return errors.New("name is too short")
				}
				if !appNameRegex.MatchString(s) {
					return errors.New("try a simpler name")
				}
				if s, _ := os.Stat(s); s != nil {
					return errors.New("that name is in use")
				}
				return nil
			}))
	}

	if templateURL == "" && templateName == "" {
		var templates []bootstrap.Template
		if err := util.Await("Fetching templates...", ctx, func(ctx context.Context) error {
			templates, err = bootstrap.FetchTemplates(ctx)
			return err
		}); err != nil {
			return err
		}
		var opts []huh.Option[string]
		for _, t := range templates {
			opts = append(opts, huh.NewOption(t.Name+" "+util.Dimmed(t.Desc), t.URL))
		}
		prompts = append(prompts, huh.NewSelect[string]().
			Title("Template").
			Options(opts...).
			Value(&templateURL))
	} else if templateURL == "" {
		templates, err := bootstrap.FetchTemplates(ctx)
		if err != nil {
			return err
		}
		for _, t := range templates {
			if t.Name == templateName {
				templateURL = t.URL
				break
			}
		}
		if templateURL == "" {
			return fmt.Errorf("template %q not found", templateName)
		}
	}

	if len(prompts) > 0 {
		if !util.Interactive() || cmd.Bool("silent") {
			return errors.New("app name and template are required when running non-interactively")
		}
		var groups []*huh.Group
		for _, p := range prompts {
			groups = append(groups, huh.NewGroup(p))
		}
		if err := huh.NewForm(groups...).
			WithTheme(util.Theme).
			RunWithContext(ctx); err != nil {
			return err
		}
	}

	if err := util.Await("Cloning template...", ctx, func(ctx context.Context) error {
		return bootstrap.CloneTemplate(ctx, templateURL, appName)
	}); err != nil {
		return err
	}

	// record the project this app belongs to
	tomlCfg := config.NewPlannerTOML(pc.Name).WithDefaultPlan()
	if err := tomlCfg.SaveTOMLFile(appName, config.PlannerTOMLFile); err != nil {
		return err
	}

	substitutions := map[string]string{
		"OPENAI_API_KEY": pc.APIKey,
	}
	if err := bootstrap.InstantiateDotEnv(ctx, appName, substitutions, cmd.Bool("verbose"),
		func(key, oldValue string) (string, error) {
			if cmd.Bool("silent") || !util.Interactive() {
				return oldValue, nil
			}
			value := oldValue
			if err := huh.NewInput().
				Title(key).
				Value(&value).
				WithTheme(util.Theme).
				Run(); err != nil {
				return "", err
			}
			return value, nil
		}); err != nil {
		return err
	}

	if err := runTaskfileInstall(ctx, appName, cmd.Bool("verbose")); err != nil {
		return err
	}

	fmt.Println("Created app [" + util.Accented(appName) + "]")
	fmt.Println("Next steps:")
	fmt.Println("\tcd " + appName)
	fmt.Println("\t" + util.Accented("ppa setup"))
	fmt.Println("\t" + util.Accented("ppa plan create"))
	return nil
}

// runTaskfileInstall runs the template's install task, if it ships one.
func runTaskfileInstall(ctx context.Context, dir string, verbose bool) error {
	tf, err := bootstrap.ParseTaskfile(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	install, err := bootstrap.NewTask(ctx, tf, dir, bootstrap.TaskInstall, verbose)
	if err != nil {
		return err
	}
	return util.Await("Installing dependencies...", ctx, func(_ context.Context) error {
		return install()
	})
}

func listTemplates(ctx context.Context, cmd *cli.Command) error {
	var (
		templates []bootstrap.Template
		err       error
	)
	if err = util.Await("Fetching templates...", ctx, func(ctx context.Context) error {
		templates, err = bootstrap.FetchTemplates(ctx)
		return err
	}); err != nil {
		return err
	}

	if cmd.Bool("json") {
		util.PrintJSON(templates)
		return nil
	}

	table := util.CreateTable().
		Headers("Name", "Description", "URL")
	for _, t := range templates {
		table.Row(t.Name, util.EllipsizeTo(t.Desc, 48), t.URL)
	}
	fmt.Println(table)
	return nil
}
