package host

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// NewLogger returns a leveled logger writing to file, or to stderr when file
// is empty. The returned closer releases the file.
func NewLogger(level, file string) (zerolog.Logger, func(), error) {
	closer := func() {}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, closer, err
	}
	if file == "" {
		l := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().
			Timestamp().
			Logger().
			Level(lvl)
		return l, closer, nil
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return zerolog.Logger{}, closer, fmt.Errorf("create logs dir: %w", err)
	}
	f, err := os.Create(file)
	if err != nil {
		return zerolog.Logger{}, closer, err
	}
	closer = func() { _ = f.Close() }
	l := zerolog.New(f).
		With().
		Timestamp().
		Logger().
		Level(lvl)
	return l, closer, nil
}
