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

// Package planner holds the project plan model and the logic that turns
// a product vision into epics, stories, tasks, and sprints.
package planner

import (
	"fmt"
	"strings"
	"time"
)

type Status string

const (
	StatusPlanned    Status = "planned"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

// ParseStatus accepts the canonical status names, case-insensitively.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusPlanned:
		return StatusPlanned, nil
	case StatusInProgress:
		return StatusInProgress, nil
	case StatusDone:
		return StatusDone, nil
	}
	return "", fmt.Errorf("unknown status %q, expected one of planned, in_progress, done", s)
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type TimeHorizon string

const (
	HorizonMonth    TimeHorizon = "month"
	HorizonQuarter  TimeHorizon = "quarter"
	HorizonHalfYear TimeHorizon = "half_year"
	HorizonYear     TimeHorizon = "year"
)

func ParseTimeHorizon(s string) (TimeHorizon, error) {
	switch TimeHorizon(strings.ToLower(strings.TrimSpace(s))) {
	case HorizonMonth:
		return HorizonMonth, nil
	case HorizonQuarter:
		return HorizonQuarter, nil
	case HorizonHalfYear:
		return HorizonHalfYear, nil
	case HorizonYear:
		return HorizonYear, nil
	}
	return "", fmt.Errorf("unknown time horizon %q, expected one of month, quarter, half_year, year", s)
}

const dateLayout = "2006-01-02"

// Date is a calendar date serialized as YYYY-MM-DD.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

type Task struct {
	ID          string   `json:"id"`
	StoryID     string   `json:"story_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Estimate    string   `json:"estimate"`
	Status      Status   `json:"status"`
	Labels      []string `json:"labels"`
}

type Story struct {
	ID                 string   `json:"id"`
	EpicID             string   `json:"epic_id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	AcceptanceCriteria []string `json:"acceptance_criteria"`
	Priority           Priority `json:"priority"`
	Status             Status   `json:"status"`
	Tasks              []*Task  `json:"tasks"`
}

type Epic struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	Status      Status   `json:"status"`
	Stories     []*Story `json:"stories"`
}

type Sprint struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	StartDate Date     `json:"start_date"`
	EndDate   Date     `json:"end_date"`
	Goal      string   `json:"goal"`
	TaskIDs   []string `json:"task_ids"`
}

type Plan struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	VisionText  string      `json:"vision_text"`
	TimeHorizon TimeHorizon `json:"time_horizon"`
	CreatedAt   time.Time   `json:"created_at"`
	Epics       []*Epic     `json:"epics"`
	Sprints     []*Sprint   `json:"sprints"`
}

// Tasks returns every task in the plan in epic/story order.
func (p *Plan) Tasks() []*Task {
	var tasks []*Task
	for _, e := range p.Epics {
		for _, s := range e.Stories {
			tasks = append(tasks, s.Tasks...)
		}
	}
	return tasks
}

// FindTask returns the task with the given id, or nil.
func (p *Plan) FindTask(id string) *Task {
	for _, t := range p.Tasks() {
		if t.ID == id {
			return t
		}
	}
	return nil
}
