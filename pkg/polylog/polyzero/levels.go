package polyzero

import (
	"github.com/rs/zerolog"

	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/polylog"
)

const (
	// DebugLevel logs are voluminous and usually disabled outside of
	// troubleshooting.
	DebugLevel = Level(zerolog.DebugLevel)
	// InfoLevel is the default logging priority.
	InfoLevel = Level(zerolog.InfoLevel)
	// WarnLevel logs are more important than Info, but don't need individual
	// human review.
	WarnLevel = Level(zerolog.WarnLevel)
	// ErrorLevel logs are high-priority.
	ErrorLevel = Level(zerolog.ErrorLevel)
)

var _ polylog.Level = Level(0)

// Level implements the polylog.Level interface for zerolog levels.
type Level zerolog.Level

// Levels is a convenience function to return all supported levels.
func Levels() []Level {
	return []Level{
		DebugLevel,
		InfoLevel,
		WarnLevel,
		ErrorLevel,
	}
}

// ParseLevel converts a level name (e.g. "info") into a Level.
func ParseLevel(levelStr string) (Level, error) {
	lvl, err := zerolog.ParseLevel(levelStr)
	if err != nil {
		return 0, err
	}
	return Level(lvl), nil
}

// String implements polylog.Level#String().
func (lvl Level) String() string {
	return zerolog.Level(lvl).String()
}

// Int implements polylog.Level#Int().
func (lvl Level) Int() int {
	return int(lvl)
}
