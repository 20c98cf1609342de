package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/diode"
	"gitlab.com/efronlicht/enve"
)

var (
	global     atomic.Pointer[zerolog.Logger] // global, shared logger.
	once       sync.Once                      // guards global.
	logFile    *os.File
	logfileErr error
)

func must[T any](v T, err error) T {
	if err != nil {
		log.Fatal(err)
	}
	return v
}

// Logfile returns the log file for this instance of the program, if any.
// It is safe to call this function from multiple goroutines, but accesses to the file are not synchronized.
// You generally shouldn't use this function directly.
func Logfile() (*os.File, error) {
	initLogger()
	return logFile, logfileErr
}

func initLogger() {
	once.Do(func() {
		servicename := enve.StringOr("EXPSERIES_SERVICE_NAME", "exp-series")

		// log to stdout, and additionally to a file
		// ($EXPSERIES_LOG_DIR/<service_name>_<timestamp>.log) when a log dir
		// is configured. The writer goes through a diode so logging never
		// stalls the program and concurrent writes stay whole. If the file
		// can't be created we keep stdout and warn the user.
		const size, pollInterval = 1024, 15 * time.Millisecond
		w := io.Writer(os.Stdout)
		if dir := enve.StringOr("EXPSERIES_LOG_DIR", ""); dir != "" {
			if logfileErr = os.MkdirAll(dir, 0o755); logfileErr == nil {
				name := fmt.Sprintf("%s_%s.log", servicename, time.Now().Format("2006-01-02_15-04-05"))
				logFile, logfileErr = os.Create(filepath.Join(dir, name))
			}
			if logfileErr == nil {
				w = io.MultiWriter(logFile, os.Stdout)
			}
		}
		w = diode.NewWriter(w, size, pollInterval, func(missed int) { log.Printf("diode: dropped %d log messages", missed) })

		logger := zerolog.New(w).
			Level(enve.Or(zerolog.ParseLevel, "EXPSERIES_LOG_LEVEL", zerolog.InfoLevel)).
			With().
			Timestamp().
			Str("instance_id", must(uuid.NewV7()).String()).Str("service", servicename).
			Logger()

		if logfileErr != nil {
			logger.Warn().Err(logfileErr).Msg("logfile is not being used, check EXPSERIES_LOG_DIR and EXPSERIES_LOG_LEVEL env vars")
		}

		if info, ok := debug.ReadBuildInfo(); ok {
			logger.Debug().Any("buildinfo", info).Msg("buildinfo dump")
		}
		global.Store(&logger)
	})
}

// Global returns the global logger. This function initializes the logger exactly once.
// It is safe to call this function from multiple goroutines.
// The Global logger relies on the following environment variables:
//
//   - EXPSERIES_LOG_DIR: directory to write the log file to; when unset, logs go to stdout only.
//   - EXPSERIES_LOG_LEVEL: the log level, defaults to "info". Possible values are "debug", "info", "warn", "error", "fatal", "panic".
//   - EXPSERIES_SERVICE_NAME: the name of the service, defaults to "exp-series"
//
// This list may change in the future.
func Global() *zerolog.Logger {
	initLogger()
	return global.Load()
}
