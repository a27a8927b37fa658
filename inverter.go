// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package gjinverse

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Inverter inverts a matrix in place.
//
// After a failed Invert the matrix content is undefined,
// retry on a fresh copy of the original.
type Inverter interface {
	Invert(ctx context.Context, m *Matrix) error
	// Name is the engine name used in reports.
	Name() string
	// Threads is the parallelism degree, 0 for the serial engine.
	Threads() int
}

// Config selects and configures an Inverter.
type Config struct {
	Field   Field              // Zero value: GF32.
	Threads int                // <= 0: serial engine.
	NoWait  bool               // Dependency graph scheduler instead of barriers.
	Logger  logrus.FieldLogger // nil: logrus.StandardLogger().

	feat int // Kernel feature, featAuto unless set by tests.
}

func (c Config) field() Field {
	if c.Field.isZero() {
		return GF32
	}
	return c.Field
}

func (c Config) logger() logrus.FieldLogger {
	if c.Logger == nil {
		return logrus.StandardLogger()
	}
	return c.Logger
}

func (c Config) gmu() *gmu {
	feat := c.feat
	if feat == featAuto {
		feat = getCPUFeature()
	}
	return newGMU(c.field(), feat)
}

// New returns the engine described by cfg.
func New(cfg Config) Inverter {
	switch {
	case cfg.Threads <= 0:
		return NewSerial(cfg)
	case cfg.NoWait:
		return NewNoWait(cfg)
	default:
		return NewParallel(cfg)
	}
}

// logRun logs the start of an inversion and returns
// the function logging its end.
func logRun(log logrus.FieldLogger, inv Inverter, n int) func(err error) {
	l := log.WithFields(logrus.Fields{
		"engine":  inv.Name(),
		"n":       n,
		"threads": inv.Threads(),
	})
	l.Debug("inversion started")
	start := time.Now()
	return func(err error) {
		l = l.WithField("elapsed", time.Since(start))
		if err != nil {
			l.WithError(err).Debug("inversion failed")
			return
		}
		l.Debug("inversion finished")
	}
}
