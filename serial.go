// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package gjinverse

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Serial is the single goroutine baseline.
// Its sequence of field operations is the one every other engine reproduces.
type Serial struct {
	g   *gmu
	log logrus.FieldLogger
}

// NewSerial returns a Serial engine, cfg.Threads and cfg.NoWait are ignored.
func NewSerial(cfg Config) *Serial {
	return &Serial{g: cfg.gmu(), log: cfg.logger()}
}

func (s *Serial) Name() string { return "SerialInverse" }

func (s *Serial) Threads() int { return 0 }

// Invert inverts m in place.
// ctx is checked once per step.
func (s *Serial) Invert(ctx context.Context, m *Matrix) (err error) {
	done := logRun(s.log, s, m.N())
	defer func() { done(err) }()

	e := newElim(s.g, m)
	for k := 0; k < e.n; k++ {
		if err = ctx.Err(); err != nil {
			return interrupted(err)
		}
		if err = e.pivot(k); err != nil {
			return err
		}
		for r := 0; r < e.n; r++ {
			if r != k {
				e.update(r, k)
			}
		}
	}
	e.permute()
	return nil
}
