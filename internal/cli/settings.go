// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package cli holds what the mathtool binaries share:
// flag defaults, logging and the run report.
package cli

import (
	"io"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables overriding flag defaults,
// e.g. GJINV_SIZE=2048.
const EnvPrefix = "GJINV"

// Settings are the flag defaults.
type Settings struct {
	Size    int
	Threads int
	Seed    int64
}

// Defaults returns the built-in defaults overridden by
// GJINV_SIZE, GJINV_THREADS and GJINV_SEED.
func Defaults() Settings {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetDefault("size", 1024)
	v.SetDefault("threads", runtime.NumCPU())
	v.SetDefault("seed", time.Now().UnixMilli()%1000000)

	return Settings{
		Size:    v.GetInt("size"),
		Threads: v.GetInt("threads"),
		Seed:    v.GetInt64("seed"),
	}
}

// NewLogger returns a logger writing to w, at debug level if verbose.
func NewLogger(w io.Writer, verbose bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}
