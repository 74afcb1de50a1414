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

// Package logger provides the CLI's logging setup: a text handler on
// stderr fanned out to the systemd journal when one is reachable.
package logger

import (
	"log/slog"
	"os"
	"strings"

	"github.com/go-logr/logr"
	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

type Config struct {
	Level string
}

var (
	level       = new(slog.LevelVar)
	defaultLog  *slog.Logger
	rootHandler slog.Handler
)

func init() {
	rootHandler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	defaultLog = slog.New(rootHandler)
}

// InitFromConfig configures the process-wide logger. The journal handler
// is best effort; when unavailable only the terminal handler is used.
func InitFromConfig(conf *Config, name string) {
	switch strings.ToLower(conf.Level) {
	case "debug":
		level.Set(slog.LevelDebug)
	case "warn":
		level.Set(slog.LevelWarn)
	case "error":
		level.Set(slog.LevelError)
	default:
		level.Set(slog.LevelInfo)
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
	}

	journalHandler, err := slogjournal.NewHandler(&slogjournal.Options{
		ReplaceGroup: func(key string) string {
			return toJournalKey(key)
		},
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			a.Key = toJournalKey(a.Key)
			return a
		},
	})
	if err == nil {
		handlers = append(handlers, journalHandler)
	}

	rootHandler = slogmulti.Fanout(handlers...)
	defaultLog = slog.New(rootHandler).With("logger", name)
}

// GetLogger returns a logr.Logger backed by the configured handlers,
// for components that take an injected logger.
func GetLogger() logr.Logger {
	return logr.FromSlogHandler(rootHandler)
}

func Debugw(msg string, keysAndValues ...any) {
	defaultLog.Debug(msg, keysAndValues...)
}

func Infow(msg string, keysAndValues ...any) {
	defaultLog.Info(msg, keysAndValues...)
}

func Warnw(msg string, err error, keysAndValues ...any) {
	if err != nil {
		keysAndValues = append(keysAndValues, "error", err)
	}
	defaultLog.Warn(msg, keysAndValues...)
}

func Errorw(msg string, err error, keysAndValues ...any) {
	if err != nil {
		keysAndValues = append(keysAndValues, "error", err)
	}
	defaultLog.Error(msg, keysAndValues...)
}

func toJournalKey(str string) string {
	str = strings.ToUpper(str)
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, str)
}
