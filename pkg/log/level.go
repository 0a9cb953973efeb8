package log

import (
	"strings"

	"github.com/gruntwork-io/go-commons/errors"
	"github.com/sirupsen/logrus"
)

// logrus.ErrorLevel is the first logrus level we expose.
const shiftLogrusLevel = 2

// These are the different logging levels.
const (
	// ErrorLevel level. Used for errors that should definitely be noted.
	ErrorLevel Level = iota
	// WarnLevel level. Non-critical entries that deserve eyes.
	WarnLevel
	// InfoLevel level. General operational entries about what's going on inside the application.
	InfoLevel
	// DebugLevel level. Usually only enabled when debugging. Very verbose logging.
	DebugLevel
	// TraceLevel level. Designates finer-grained informational events than the Debug.
	TraceLevel
)

// DefaultLevel is the level of a logger configured without an explicit level.
const DefaultLevel = InfoLevel

// AllLevels exposes all logging levels
var AllLevels = Levels{
	ErrorLevel,
	WarnLevel,
	InfoLevel,
	DebugLevel,
	TraceLevel,
}

var levelNames = map[Level]string{
	ErrorLevel: "error",
	WarnLevel:  "warn",
	InfoLevel:  "info",
	DebugLevel: "debug",
	TraceLevel: "trace",
}

var levelShortNames = map[Level]string{
	ErrorLevel: "E",
	WarnLevel:  "W",
	InfoLevel:  "I",
	DebugLevel: "D",
	TraceLevel: "T",
}

// Level type
type Level uint32

// ParseLevel takes a string and returns the Level constant.
func ParseLevel(str string) (Level, error) {
	for _, level := range AllLevels {
		if strings.EqualFold(levelNames[level], str) {
			return level, nil
		}
	}

	return Level(0), errors.Errorf("invalid level %q, supported levels: %s", str, AllLevels)
}

// String implements fmt.Stringer.
func (level Level) String() string {
	if name, ok := levelNames[level]; ok {
		return name
	}

	return ""
}

// ShortName returns the one letter name of the level.
func (level Level) ShortName() string {
	if name, ok := levelShortNames[level]; ok {
		return name
	}

	return ""
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (level *Level) UnmarshalText(text []byte) error {
	lvl, err := ParseLevel(string(text))
	if err != nil {
		return err
	}

	*level = lvl

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (level Level) MarshalText() ([]byte, error) {
	if name := level.String(); name != "" {
		return []byte(name), nil
	}

	return nil, errors.Errorf("invalid level: %d", uint32(level))
}

// ToLogrusLevel converts the level to the matching logrus level.
func (level Level) ToLogrusLevel() logrus.Level {
	return logrus.Level(level + shiftLogrusLevel)
}

// FromLogrusLevel converts a logrus level to Level. Logrus levels more severe than error map to ErrorLevel.
func FromLogrusLevel(lvl logrus.Level) Level {
	if lvl < shiftLogrusLevel {
		return ErrorLevel
	}

	return Level(lvl - shiftLogrusLevel)
}

type Levels []Level

func (levels Levels) Names() []string {
	strs := make([]string, len(levels))

	for i, level := range levels {
		strs[i] = level.String()
	}

	return strs
}

func (levels Levels) String() string {
	return strings.Join(levels.Names(), ", ")
}
