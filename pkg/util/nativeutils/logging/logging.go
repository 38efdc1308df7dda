// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package logging

import (
	"io"
	"os"

	cfg "github.com/dusk-network/dusk-base58/pkg/config"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// InitLog applies the logger level and format from configurations and
// directs the output to logFile.
func InitLog(logFile io.Writer) {
	SetToLevel(cfg.Get().Logger.Level)
	SetFormat(cfg.Get().Logger.Format)
	log.SetOutput(logFile)
}

// SetToLevel sets the logrus level, falling back to trace on a bad level.
func SetToLevel(l string) {
	level, err := log.ParseLevel(l)
	if err == nil {
		log.SetLevel(level)
	} else {
		log.SetLevel(log.TraceLevel)
		log.Warnf("Parse logger level from config err: %v", err)
	}
}

// SetFormat selects the JSON formatter for "json" and the text one
// otherwise.
func SetFormat(format string) {
	if format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
		return
	}
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
}

// OpenOutput returns the writer named by output: "stderr", "stdout", or a
// file output.log created for any other name. The returned func closes the
// file, if any.
func OpenOutput(output string) (io.Writer, func() error, error) {
	switch output {
	case "", "stderr":
		return os.Stderr, func() error { return nil }, nil
	case "stdout":
		return os.Stdout, func() error { return nil }, nil
	}

	logFile, err := os.Create(output + ".log")
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not create log file")
	}
	return logFile, logFile.Close, nil
}
