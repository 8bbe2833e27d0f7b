// Package logging routes the standard logger to a rotating file, since the
// terminal belongs to the UI while artgrid runs.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 14
)

// Setup creates the log directory and points the standard logger at a
// rotating file at path. Closing the returned io.Closer restores stderr
// output and closes the file.
func Setup(path string) (io.Closer, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("log path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	out := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   true,
	}
	log.SetOutput(out)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	return closer{out}, nil
}

type closer struct {
	out *lumberjack.Logger
}

func (c closer) Close() error {
	log.SetOutput(os.Stderr)
	return c.out.Close()
}
