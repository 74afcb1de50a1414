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

package planner

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultDataDir  = "data"
	DefaultPlanFile = "plan.json"
)

var ErrPlanNotFound = errors.New("no plan found, create one first")

// Store persists plans as indented JSON files under a data directory.
type Store struct {
	DataDir string
}

func NewStore(dataDir string) *Store {
	if dataDir == "" {
		dataDir = DefaultDataDir
	}
	return &Store{DataDir: dataDir}
}

func (s *Store) planPath(filename string) string {
	if filename == "" {
		filename = DefaultPlanFile
	}
	return filepath.Join(s.DataDir, filename)
}

// Save writes the plan to <data-dir>/<filename> and returns the path.
func (s *Store) Save(plan *Plan, filename string) (string, error) {
	if err := os.MkdirAll(s.DataDir, 0755); err != nil {
		return "", errors.Wrap(err, "could not create data directory")
	}

	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "could not serialize plan")
	}

	path := s.planPath(filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", errors.Wrap(err, "could not write plan file")
	}
	return path, nil
}

// Load reads a plan back from <data-dir>/<filename>.
func (s *Store) Load(filename string) (*Plan, error) {
	data, err := os.ReadFile(s.planPath(filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrPlanNotFound
		}
		return nil, errors.Wrap(err, "could not read plan file")
	}

	plan := &Plan{}
	if err := json.Unmarshal(data, plan); err != nil {
		return nil, errors.Wrap(err, "could not parse plan file")
	}
	return plan, nil
}

// List loads every plan file in the data directory, in filename order.
func (s *Store) List() ([]*Plan, error) {
	entries, err := os.ReadDir(s.DataDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "could not read data directory")
	}

	var (
		mu    sync.Mutex
		plans = make(map[string]*Plan)
		group errgroup.Group
	)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		name := entry.Name()
		group.Go(func() error {
			plan, err := s.Load(name)
			if err != nil {
				return err
			}
			mu.Lock()
			plans[name] = plan
			mu.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(plans))
	for name := range plans {
		names = append(names, name)
	}
	sort.Strings(names)

	ordered := make([]*Plan, 0, len(names))
	for _, name := range names {
		ordered = append(ordered, plans[name])
	}
	return ordered, nil
}

// UpdateTaskStatus sets the status of one task and writes the plan back.
func (s *Store) UpdateTaskStatus(filename, taskID string, status Status) (*Task, error) {
	plan, err := s.Load(filename)
	if err != nil {
		return nil, err
	}

	task := plan.FindTask(taskID)
	if task == nil {
		return nil, errors.Errorf("task %s not found in plan %s", taskID, plan.ID)
	}
	task.Status = status

	if _, err := s.Save(plan, filename); err != nil {
		return nil, err
	}
	return task, nil
}
