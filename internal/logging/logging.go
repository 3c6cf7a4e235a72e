// internal/logging/logging.go
package logging

import (
	"fmt"
	"io"
	"strings"

	"code.cloudfoundry.org/lager"
)

// Levels lists the names accepted by ParseLevel, most verbose first.
var Levels = []string{"debug", "info", "error", "fatal"}

// ParseLevel maps a level name to its lager.LogLevel.
func ParseLevel(s string) (lager.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return lager.DEBUG, nil
	case "info":
		return lager.INFO, nil
	case "error", "":
		return lager.ERROR, nil
	case "fatal":
		return lager.FATAL, nil
	}
	return lager.ERROR, fmt.Errorf("invalid log level %q (want %s)", s, strings.Join(Levels, " | "))
}

// New returns a logger for component that writes JSON lines at or above
// level to w.
func New(component string, w io.Writer, level string) (lager.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger := lager.NewLogger(component)
	logger.RegisterSink(lager.NewWriterSink(w, lvl))
	return logger, nil
}
