// Package alog holds the logging conventions of the entities module.
//
// The containers log through the Logger interface, which is satisfied by *slog.Logger.
// They only log on the library levels LevelInfo and LevelDebug,
// which are below slog.LevelDebug, so that an application logger stays quiet
// unless the library output is asked for explicitly.
package alog

import (
	"context"
	"log/slog"
)

// Logger interface is a subset of slog.Logger.
// It encourages the use of the methods offering context.Context
// and the levels `DEBUG` and `INFO` over others, but without preventing them.
type Logger interface {
	Log(ctx context.Context, level slog.Level, msg string, args ...any)
	LogAttrs(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr)
	DebugContext(ctx context.Context, msg string, args ...any)
	InfoContext(ctx context.Context, msg string, args ...any)
}

var _ Logger = (*slog.Logger)(nil)

const (
	// LevelInfo is used to see what is going on inside the containers.
	LevelInfo = slog.Level(-8)

	// LevelDebug is used for every single collision and dropped insert, if you really want to know what is going on.
	LevelDebug = slog.Level(-12)
)

// MapLogLevelsToName replaces the default name of a custom log level with a speaking name for the library levels.
// Use it as slog.HandlerOptions.ReplaceAttr.
func MapLogLevelsToName(_ []string, attr slog.Attr) slog.Attr {
	if attr.Key == slog.LevelKey {
		level, _ := attr.Value.Any().(slog.Level)

		levelLabel, exists := getLevelNames()[level]
		if !exists {
			levelLabel = level.String()
		}

		attr.Value = slog.StringValue(levelLabel)
	}

	return attr
}

// getLevelNames maps the library log levels to human-readable names.
func getLevelNames() map[slog.Leveler]string {
	return map[slog.Leveler]string{
		LevelInfo:  "ENTITIES:INFO",
		LevelDebug: "ENTITIES:DEBUG",
	}
}
