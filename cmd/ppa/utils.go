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
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/vinvishak/Project-Planner-Agent/pkg/config"
	"github.com/vinvishak/Project-Planner-Agent/pkg/llm"
	"github.com/vinvishak/Project-Planner-Agent/pkg/planner"
	"github.com/vinvishak/Project-Planner-Agent/pkg/util"
)

var (
	workingDir    string = "."
	tomlFilename  string = config.PlannerTOMLFile
	plannerConfig *config.PlannerTOML

	jsonFlag = &cli.BoolFlag{
		Name:    "json",
		Aliases: []string{"j"},
		Usage:   "Output as JSON",
	}
	silentFlag = &cli.BoolFlag{
		Name:     "silent",
		Usage:    "If set, will not prompt for confirmation",
		Required: false,
		Value:    false,
	}
	openFlag = util.OpenFlag

	globalFlags = []cli.Flag{
		&cli.StringFlag{
			Name:    "url",
			Usage:   "`URL` of the chat completion endpoint",
			Sources: cli.EnvVars("OPENAI_BASE_URL"),
		},
		&cli.StringFlag{
			Name:    "api-key",
			Usage:   "Your `KEY`",
			Sources: cli.EnvVars("OPENAI_API_KEY"),
		},
		&cli.StringFlag{
			Name:    "model",
			Usage:   "`MODEL` used to draft plan outlines",
			Sources: cli.EnvVars("PPA_MODEL"),
		},
		&cli.StringFlag{
			Name:  "project",
			Usage: "`NAME` of a configured project",
		},
		&cli.StringFlag{
			Name:        "dir",
			Usage:       "Workspace `DIR` to operate in",
			Value:       ".",
			Destination: &workingDir,
			Required:    false,
		},
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Config `TOML` to use in the working directory",
			Value:       config.PlannerTOMLFile,
			Destination: &tomlFilename,
			Required:    false,
		},
		&cli.BoolFlag{
			Name:     "verbose",
			Required: false,
		},
	}
)

// TemplateStringFlag expands %-tokens (timestamps, random hex, user)
// in its value, so plan files can carry generated names.
type TemplateStringFlag = cli.FlagBase[string, cli.StringConfig, templateStringValue]

type templateStringValue struct {
	destination *string
	trimSpace   bool
}

func (s templateStringValue) Create(val string, p *string, c cli.StringConfig) cli.Value {
	*p = util.ExpandTemplate(val)
	return &templateStringValue{
		destination: p,
		trimSpace:   c.TrimSpace,
	}
}

func (s templateStringValue) ToString(val string) string {
	if val == "" {
		return val
	}
	return fmt.Sprintf("%q", val)
}

func (s *templateStringValue) Get() any { return util.ExpandTemplate(*s.destination) }

func (s *templateStringValue) Set(val string) error {
	if s.trimSpace {
		val = strings.TrimSpace(val)
	}
	*s.destination = util.ExpandTemplate(val)
	return nil
}

func (s *templateStringValue) String() string {
	if s.destination != nil {
		return *s.destination
	}
	return ""
}

func extractArg(c *cli.Command) (string, error) {
	if !c.Args().Present() {
		return "", errors.New("no argument provided")
	}
	return c.Args().First(), nil
}

// loadWorkdirConfig reads planner.toml from the working directory, if
// one exists. A missing file is not an error.
func loadWorkdirConfig() (*config.PlannerTOML, error) {
	cfg, exists, err := config.LoadTOMLFile(workingDir, tomlFilename)
	if !exists {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	plannerConfig = cfg
	return cfg, nil
}

// attempt to load project credentials, prioritizing
// 1. command line flags (or env vars)
// 2. config file (by default, planner.toml) naming a configured project
// 3. default project config
func loadProjectDetails(c *cli.Command) (*config.ProjectConfig, error) {
	logDetails := func(pc *config.ProjectConfig) {
		if c.Bool("verbose") {
			fmt.Printf("URL: %s, model: %s, api-key: %s\n", pc.URL, pc.Model, "************")
		}
	}

	// if explicit project is defined, then use it
	if c.String("project") != "" {
		pc, err := config.LoadProject(c.String("project"))
		if err != nil {
			return nil, err
		}
		fmt.Println("Using project [" + util.Accented(c.String("project")) + "]")
		logDetails(pc)
		return pc, nil
	}

	pc := &config.ProjectConfig{}
	if val := c.String("url"); val != "" {
		pc.URL = val
	}
	if val := c.String("api-key"); val != "" {
		pc.APIKey = val
	}
	if val := c.String("model"); val != "" {
		pc.Model = val
	}
	if pc.APIKey != "" {
		if os.Getenv("OPENAI_API_KEY") == pc.APIKey && !c.Bool("silent") {
			fmt.Println("Using api-key from environment")
		}
		logDetails(pc)
		return pc, nil
	}

	// load from config file
	if cfg, err := loadWorkdirConfig(); err != nil {
		return nil, err
	} else if cfg != nil && cfg.Project != nil && cfg.Project.Name != "" {
		named, err := config.LoadProject(cfg.Project.Name)
		if err == nil {
			fmt.Println("Using project [" + util.Accented(named.Name) + "]")
			logDetails(named)
			return named, nil
		}
	}

	// load default project
	dp, err := config.LoadDefaultProject()
	if err == nil {
		if !c.Bool("silent") {
			fmt.Println("Using default project [" + util.Accented(dp.Name) + "]")
			logDetails(dp)
		}
		return dp, nil
	}

	return nil, errors.New("api-key is required, set OPENAI_API_KEY or configure a project with `ppa project add`")
}

// newOutlineClient builds the LLM client for the resolved project.
func newOutlineClient(pc *config.ProjectConfig) *llm.Client {
	var opts []llm.ClientOption
	if pc.URL != "" {
		opts = append(opts, llm.WithBaseURL(pc.URL))
	}
	if pc.Model != "" {
		opts = append(opts, llm.WithModel(pc.Model))
	}
	return llm.NewClient(pc.APIKey, opts...)
}

// planStore resolves the data directory from flags and planner.toml.
func planStore(c *cli.Command) (*planner.Store, error) {
	if val := c.String("data-dir"); val != "" {
		return planner.NewStore(val), nil
	}
	if cfg, err := loadWorkdirConfig(); err != nil {
		return nil, err
	} else if cfg != nil && cfg.HasPlan() && cfg.Plan.DataDir != "" {
		return planner.NewStore(cfg.Plan.DataDir), nil
	}
	return planner.NewStore(planner.DefaultDataDir), nil
}
