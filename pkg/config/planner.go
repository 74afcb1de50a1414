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

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/vinvishak/Project-Planner-Agent/pkg/logger"
	"github.com/vinvishak/Project-Planner-Agent/pkg/util"
)

const (
	PlannerTOMLFile = "planner.toml"
)

var (
	ErrInvalidConfig = errors.New("invalid configuration file")
)

type PlannerTOML struct {
	Project *PlannerTOMLProjectConfig `toml:"project"` // Required
	Plan    *PlannerTOMLPlanConfig    `toml:"plan"`
}

type PlannerTOMLProjectConfig struct {
	Name string `toml:"name"`
}

type PlannerTOMLPlanConfig struct {
	DataDir    string `toml:"data_dir"`
	Horizon    string `toml:"horizon"`
	SprintDays int    `toml:"sprint_days"`
}

func NewPlannerTOML(forProject string) *PlannerTOML {
	return &PlannerTOML{
		Project: &PlannerTOMLProjectConfig{
			Name: forProject,
		},
	}
}

func (c *PlannerTOML) WithDefaultPlan() *PlannerTOML {
	c.Plan = &PlannerTOMLPlanConfig{}
	return c
}

func (c *PlannerTOML) HasPlan() bool {
	return c.Plan != nil
}

func (c *PlannerTOML) Validate() error {
	if c.Project == nil || c.Project.Name == "" {
		return fmt.Errorf("missing project name: %w", ErrInvalidConfig)
	}
	if c.Plan != nil && c.Plan.SprintDays < 0 {
		return fmt.Errorf("sprint_days cannot be negative: %w", ErrInvalidConfig)
	}
	return nil
}

func (c *PlannerTOML) SaveTOMLFile(dir string, tomlFileName string) error {
	f, err := os.Create(filepath.Join(dir, tomlFileName))
	if err != nil {
		return err
	}
	defer f.Close()
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("error encoding TOML: %w", err)
	}
	fmt.Printf("Saving config file [%s]\n", util.Accented(tomlFileName))
	return nil
}

func LoadTOMLFile(dir string, tomlFileName string) (*PlannerTOML, bool, error) {
	logger.Debugw(fmt.Sprintf("loading %s file", tomlFileName))
	var config *PlannerTOML = nil
	var err error
	var configExists bool = false

	tomlFile := filepath.Join(dir, tomlFileName)

	if _, err = os.Stat(tomlFile); err == nil {
		configExists = true

		if _, err = toml.DecodeFile(tomlFile, &config); err != nil {
			return nil, configExists, err
		}
		if err = config.Validate(); err != nil {
			return nil, configExists, err
		}
	} else {
		configExists = !errors.Is(err, fs.ErrNotExist)
	}

	return config, configExists, err
}
