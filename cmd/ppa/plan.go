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
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/vinvishak/Project-Planner-Agent/pkg/planner"
	"github.com/vinvishak/Project-Planner-Agent/pkg/util"
)

var (
	planFileFlag = &TemplateStringFlag{
		Name:  "file",
		Usage: "Plan `FILENAME` inside the data directory, supports templated names like plan-%t.json",
		Value: planner.DefaultPlanFile,
	}
	dataDirFlag = &cli.StringFlag{
		Name:  "data-dir",
		Usage: "`DIR` where plan files are stored",
	}

	PlanCommands = []*cli.Command{
		{
			Name:  "plan",
			Usage: "Create, inspect, and update project plans",
			Commands: []*cli.Command{
				{
					Name:      "create",
					Usage:     "Draft a structured plan from a product vision",
					UsageText: "ppa plan create [--name NAME] [--vision TEXT] [--horizon HORIZON]",
					Action:    createPlan,
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:  "name",
							Usage: "`NAME` of the plan",
						},
						&cli.StringFlag{
							Name:  "vision",
							Usage: "Product vision `TEXT`",
						},
						&cli.StringFlag{
							Name:  "horizon",
							Usage: "Time `HORIZON`: month, quarter, half_year, or year",
						},
						planFileFlag,
						dataDirFlag,
						jsonFlag,
						silentFlag,
					},
				},
				{
					Name:      "inspect",
					Usage:     "Render a saved plan with its epics, stories, tasks, and sprints",
					UsageText: "ppa plan inspect [--file FILENAME]",
					Action:    inspectPlan,
					Flags:     []cli.Flag{planFileFlag, dataDirFlag, jsonFlag, openFlag},
				},
				{
					Name:      "list",
					Usage:     "List all saved plans",
					UsageText: "ppa plan list",
					Action:    listPlans,
					Flags:     []cli.Flag{dataDirFlag, jsonFlag},
				},
				{
					Name:  "task",
					Usage: "Update tasks inside a saved plan",
					Commands: []*cli.Command{
						{
							Name:      "done",
							Usage:     "Mark a task as done",
							UsageText: "ppa plan task done TASK_ID",
							ArgsUsage: "TASK_ID",
							Action:    completeTask,
							Flags:     []cli.Flag{planFileFlag, dataDirFlag, jsonFlag},
						},
						{
							Name:      "start",
							Usage:     "Mark a task as in progress",
							UsageText: "ppa plan task start TASK_ID",
							ArgsUsage: "TASK_ID",
							Action:    startTask,
							Flags:     []cli.Flag{planFileFlag, dataDirFlag, jsonFlag},
						},
					},
				},
			},
		},
	}
)

func createPlan(ctx context.Context, cmd *cli.Command) error {
	var (
		name    = cmd.String("name")
		vision  = cmd.String("vision")
		horizon = planner.TimeHorizon(cmd.String("horizon"))
		err     error
	)

	if horizon == "" {
		if cfg, err := loadWorkdirConfig(); err == nil && cfg != nil && cfg.HasPlan() && cfg.Plan.Horizon != "" {
			horizon = planner.TimeHorizon(cfg.Plan.Horizon)
		}
	}

	var prompts []huh.Field
	if name == "" {
		prompts = append(prompts, huh.NewInput().
			Title("Plan name").
			Placeholder("My Project Plan").
			Value(&name))
	}
	if vision == "" {
		prompts = append(prompts, huh.NewText().
			Title("Product vision").
			Description("What should this project achieve?").
			CharLimit(4000).
			Value(&vision))
	}
	if horizon == "" {
		prompts = append(prompts, huh.NewSelect[planner.TimeHorizon]().
			Title("Time horizon").
			Options(
				huh.NewOption("Month", planner.HorizonMonth),
				huh.NewOption("Quarter", planner.HorizonQuarter),
				huh.NewOption("Half year", planner.HorizonHalfYear),
				huh.NewOption("Year", planner.HorizonYear),
			).
			Value(&horizon))
	}

	if len(prompts) > 0 {
		if !util.Interactive() || cmd.Bool("silent") {
			return errors.New("name, vision, and horizon are required when running non-interactively")
		}
		var groups []*huh.Group
		for _, p := range prompts {
			groups = append(groups, huh.NewGroup(p))
		}
		if err = huh.NewForm(groups...).
			WithTheme(util.Theme).
			RunWithContext(ctx); err != nil {
			return err
		}
	}

	if name == "" {
		name = "My Project Plan"
	}
	if strings.TrimSpace(vision) == "" {
		fmt.Println("WARNING: no vision provided, nothing to plan")
		return nil
	}
	if horizon, err = planner.ParseTimeHorizon(string(horizon)); err != nil {
		return err
	}

	pc, err := loadProjectDetails(cmd)
	if err != nil {
		return err
	}
	store, err := planStore(cmd)
	if err != nil {
		return err
	}

	opts := planner.Options{}
	if plannerConfig != nil && plannerConfig.HasPlan() {
		opts.SprintDays = plannerConfig.Plan.SprintDays
	}

	var plan *planner.Plan
	if err = util.Await("Drafting plan outline...", ctx, func(ctx context.Context) error {
		plan = planner.CreatePlanFromVision(ctx, newOutlineClient(pc), name, vision, horizon, opts)
		return nil
	}); err != nil {
		return err
	}

	path, err := store.Save(plan, cmd.String("file"))
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		util.PrintJSON(plan)
		return nil
	}

	fmt.Println("Plan saved to [" + util.Accented(path) + "]")
	fmt.Printf("Drafted %d epics across %d sprints. View it with:\n", len(plan.Epics), len(plan.Sprints))
	fmt.Println("\t" + util.Accented("ppa plan inspect"))
	return nil
}

func inspectPlan(ctx context.Context, cmd *cli.Command) error {
	store, err := planStore(cmd)
	if err != nil {
		return err
	}
	plan, err := store.Load(cmd.String("file"))
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		util.PrintJSON(plan)
	} else {
		renderPlan(plan)
	}

	if cmd.Bool("open") {
		return util.OpenPlanFile(filepath.Join(store.DataDir, cmd.String("file")))
	}
	return nil
}

func renderPlan(plan *planner.Plan) {
	fmt.Println(util.Accented(plan.Name) + " " + util.Dimmed("("+plan.ID+")"))
	fmt.Println(util.Dimmed("Horizon: " + string(plan.TimeHorizon) + " | Created: " + plan.CreatedAt.Format("2006-01-02")))
	for _, line := range util.WrapToLines(plan.VisionText, 72) {
		fmt.Println(util.Dimmed(line))
	}
	fmt.Println()

	for _, epic := range plan.Epics {
		fmt.Printf("%s %s %s\n", util.Accented(epic.ID), epic.Title, util.Dimmed("["+string(epic.Priority)+"]"))
		if epic.Description != "" {
			fmt.Println("  " + util.Dimmed(epic.Description))
		}
		for _, story := range epic.Stories {
			fmt.Printf("  %s %s\n", util.Accented(story.ID), story.Title)
			if story.Description != "" {
				fmt.Println("    " + util.Dimmed(story.Description))
			}
			for _, criterion := range story.AcceptanceCriteria {
				fmt.Println("    - " + criterion)
			}
			for _, task := range story.Tasks {
				fmt.Printf("    %s %s %s\n",
					util.Dimmed(task.ID), task.Title, util.Dimmed("("+task.Estimate+", "+string(task.Status)+")"))
			}
		}
		fmt.Println()
	}

	table := util.CreateTable().
		Headers("Sprint", "Start", "End", "Tasks", "Goal")
	for _, sprint := range plan.Sprints {
		table.Row(
			sprint.Name,
			sprint.StartDate.String(),
			sprint.EndDate.String(),
			strconv.Itoa(len(sprint.TaskIDs)),
			util.EllipsizeTo(sprint.Goal, 40),
		)
	}
	fmt.Println(table)
}

func listPlans(ctx context.Context, cmd *cli.Command) error {
	store, err := planStore(cmd)
	if err != nil {
		return err
	}
	plans, err := store.List()
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		util.PrintJSON(plans)
		return nil
	}

	if len(plans) == 0 {
		fmt.Println("No plans found, create one with `ppa plan create`.")
		return nil
	}

	table := util.CreateTable().
		Headers("ID", "Name", "Horizon", "Epics", "Tasks", "Created")
	for _, p := range plans {
		table.Row(
			p.ID,
			util.EllipsizeTo(p.Name, 32),
			string(p.TimeHorizon),
			strconv.Itoa(len(p.Epics)),
			strconv.Itoa(len(p.Tasks())),
			p.CreatedAt.Format("2006-01-02"),
		)
	}
	fmt.Println(table)
	return nil
}

func completeTask(ctx context.Context, cmd *cli.Command) error {
	return updateTask(cmd, planner.StatusDone)
}

func startTask(ctx context.Context, cmd *cli.Command) error {
	return updateTask(cmd, planner.StatusInProgress)
}

func updateTask(cmd *cli.Command, status planner.Status) error {
	taskID, err := extractArg(cmd)
	if err != nil {
		_ = cli.ShowSubcommandHelp(cmd)
		return errors.New("task id is required")
	}

	store, err := planStore(cmd)
	if err != nil {
		return err
	}
	task, err := store.UpdateTaskStatus(cmd.String("file"), taskID, status)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		util.PrintJSON(task)
		return nil
	}
	fmt.Printf("Task %s is now %s\n", util.Accented(task.ID), util.Accented(string(task.Status)))
	return nil
}
