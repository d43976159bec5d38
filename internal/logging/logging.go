// Package logging configures the zerolog console logger shared by the
// judge drivers. Logs go to stderr so that stdout carries only answers.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	colorRed     = 31
	colorGreen   = 32
	colorYellow  = 33
	colorMagenta = 35
	colorBold    = 1
)

// Level maps a -debug flag value to a zerolog level: 0 info, 1 debug,
// anything higher trace.
func Level(debug int) zerolog.Level {
	switch {
	case debug <= 0:
		return zerolog.InfoLevel
	case debug == 1:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// Setup installs a console logger writing to out as the global log.Logger
// and returns it.
func Setup(out io.Writer, debug int, noColour bool) zerolog.Logger {
	cw := zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly, NoColor: noColour}
	cw.FormatLevel = func(i any) string { return formatLevel(i, noColour) }
	cw.PartsOrder = []string{
		zerolog.TimestampFieldName,
		zerolog.LevelFieldName,
		zerolog.MessageFieldName,
	}
	log.Logger = zerolog.New(cw).With().Timestamp().Logger().Level(Level(debug))

	return log.Logger
}

func colorize(s string, c int, noColour bool) string {
	if noColour {
		return s
	}
	return fmt.Sprintf("\x1b[%dm%s\x1b[0m", c, s)
}

func formatLevel(i any, noColour bool) string {
	ll, ok := i.(string)
	if !ok {
		return "| ??? |"
	}
	switch ll {
	case zerolog.LevelTraceValue:
		return colorize("| TRACE |", colorMagenta, noColour)
	case zerolog.LevelDebugValue:
		return colorize("| DEBUG |", colorYellow, noColour)
	case zerolog.LevelInfoValue:
		return colorize("| INFO  |", colorGreen, noColour)
	case zerolog.LevelWarnValue:
		return colorize("| WARN  |", colorRed, noColour)
	case zerolog.LevelErrorValue, zerolog.LevelFatalValue, zerolog.LevelPanicValue:
		return colorize(colorize(fmt.Sprintf("| %-5s |", strings.ToUpper(ll)), colorRed, noColour), colorBold, noColour)
	default:
		return colorize(ll, colorBold, noColour)
	}
}
