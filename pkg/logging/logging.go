package logging

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	envRootLevel      = "LOG_LEVEL"
	envComponentLevel = "LOG_LEVEL_"
	defaultLevel      = "info"
)

var RootLogger zerolog.Logger

var (
	setupOnce sync.Once
	mu        sync.Mutex
	loggers   = map[string]zerolog.Logger{}
)

func setupLog() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	output := zerolog.ConsoleWriter{
		Out:           os.Stdout,
		TimeFormat:    "2006-01-02T15:04:05.000",
		PartsOrder:    []string{"time", "level", "component", "message"},
		FieldsExclude: []string{"component"},
	}
	output.FormatLevel = func(i any) string {
		s := strings.ToUpper(fmt.Sprintf("%s", i))
		color := COLOR_NONE
		switch s {
		case "WARN":
			color = COLOR_RED
		case "ERROR", "FATAL", "PANIC":
			color = COLOR_LIGHT_RED
		}
		return "|" + color + fmt.Sprintf("%-6s", s) + COLOR_NONE + "|"
	}
	output.FormatMessage = func(i any) string {
		return fmt.Sprintf("| %s ", i)
	}
	output.FormatFieldName = func(i any) string {
		return fmt.Sprintf("%s:", i)
	}
	output.FormatFieldValue = func(i any) string {
		if i == nil {
			return "| -"
		}
		s := fmt.Sprintf("%s", i)
		if strings.HasPrefix(s, "pkg:") {
			return abbreviateIfNecessary(s[4:])
		}
		return s
	}

	RootLogger = zerolog.New(output).With().Timestamp().Str("component", "pkg:root").Logger()
}

const MAX_LENGTH = 20

func abbreviateIfNecessary(s string) string {
	if len(s) <= MAX_LENGTH {
		return s + strings.Repeat(" ", MAX_LENGTH-len(s))
	}
	return s[:MAX_LENGTH-2] + ".."
}

// GetLog returns the logger for a component, e.g. "tapir/cmd/tapdemo".
// The name is shortened first ("t.c.tapdemo") and the level is read from
// LOG_LEVEL_<SHORTENED NAME>, here LOG_LEVEL_T_C_TAPDEMO, else LOG_LEVEL,
// else info.
func GetLog(component string) zerolog.Logger {
	setupOnce.Do(setupLog)
	component = shortenString(component)

	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[component]; ok {
		return l
	}

	level := levelFor(component)
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		panic(fmt.Errorf("unknown level '%s' for component '%s': %w", level, component, err))
	}
	l := RootLogger.With().Str("component", "pkg:"+component).Logger().Level(lvl)
	loggers[component] = l
	return l
}

func levelFor(component string) string {
	if level, ok := os.LookupEnv(componentLevelKey(component)); ok {
		return level
	}
	if level, ok := os.LookupEnv(envRootLevel); ok {
		return level
	}
	return defaultLevel
}

func componentLevelKey(component string) string {
	key := strings.NewReplacer(".", "_", "-", "_").Replace(component)
	return envComponentLevel + strings.ToUpper(key)
}

func shortenString(fullPackage string) string {
	parts := strings.Split(fullPackage, "/")
	shortenedParts := make([]string, 0, len(parts))
	for i, part := range parts {
		if i < len(parts)-1 && part != "" {
			part = part[:1]
		}
		shortenedParts = append(shortenedParts, part)
	}
	return strings.Join(shortenedParts, ".")
}

// https://unix.stackexchange.com/a/174/206459
const (
	COLOR_NONE      = "\033[0m"
	COLOR_RED       = "\033[0;31m"
	COLOR_LIGHT_RED = "\033[1;31m"
)
