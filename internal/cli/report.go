// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// Report describes one inversion run.
type Report struct {
	Engine  string        `yaml:"engine"`
	Threads int           `yaml:"threads,omitempty"` // 0 for serial engines.
	N       int           `yaml:"n"`
	Seed    int64         `yaml:"seed"`
	Elapsed time.Duration `yaml:"elapsed"`
	Score   int64         `yaml:"score"` // n^3 per second.
	Check   *CheckReport  `yaml:"check,omitempty"`
}

// CheckReport is the verification result.
type CheckReport struct {
	OK       bool          `yaml:"ok"`
	MaxError *float64      `yaml:"max_error,omitempty"` // Float inverses only.
	Elapsed  time.Duration `yaml:"elapsed"`
}

// NewReport fills the score from n and elapsed.
func NewReport(engine string, threads, n int, seed int64, elapsed time.Duration) *Report {
	secs := elapsed.Seconds()
	if secs <= 0 {
		secs = time.Microsecond.Seconds()
	}
	nf := float64(n)
	return &Report{
		Engine:  engine,
		Threads: threads,
		N:       n,
		Seed:    seed,
		Elapsed: elapsed,
		Score:   int64(nf * nf * nf / secs),
	}
}

func okStr(ok bool) string {
	if ok {
		return "OK"
	}
	return "FAIL"
}

// WriteText writes the report in the classic one-line-per-phase format.
func (r *Report) WriteText(w io.Writer) error {
	head := r.Engine + ":"
	if r.Threads > 0 {
		head += fmt.Sprintf(" threads: %d", r.Threads)
	}
	_, err := fmt.Fprintf(w, "%s n: %d  seed: %d  time: %d ms  score: %d ops/sec\n",
		head, r.N, r.Seed, r.Elapsed.Milliseconds(), r.Score)
	if err != nil || r.Check == nil {
		return err
	}

	c := r.Check
	if c.MaxError != nil {
		_, err = fmt.Fprintf(w, "max abs(error): %g %s time: %d ms\n",
			*c.MaxError, okStr(c.OK), c.Elapsed.Milliseconds())
		return err
	}
	_, err = fmt.Fprintf(w, "check: %s time: %d ms\n", okStr(c.OK), c.Elapsed.Milliseconds())
	return err
}

// WriteYAML writes the report as a YAML document.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

// Write writes the report as YAML or text.
func (r *Report) Write(w io.Writer, asYAML bool) error {
	if asYAML {
		return r.WriteYAML(w)
	}
	return r.WriteText(w)
}
