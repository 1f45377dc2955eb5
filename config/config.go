// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the tunable parameters of a comparison run. The
// zero value, and a nil *Config, both mean "use the defaults" — every
// accessor tolerates a nil receiver, matching ivy's config.Config so
// that a caller can pass nil wherever a Config isn't worth building.
package config

import (
	"fmt"
	"math/big"
	"os"
)

// Defaults, named so they read as a single source of truth rather than
// magic numbers scattered through eval and compare.
const (
	// DefaultInitialIter is the starting Newton/series iteration count.
	DefaultInitialIter = 3
	// DefaultInitialDenomCap is the starting denominator ceiling applied
	// after every interval-producing step.
	DefaultInitialDenomCap = 6091
	// DefaultGrowFactor multiplies the denom cap each time
	// compare.Compare fails to separate two intervals and retries (iter
	// itself grows by one per round).
	DefaultGrowFactor = 3
	// DefaultMaxRounds bounds how many times compare.Compare will grow
	// iter/denom cap before giving up and reporting Diverged.
	DefaultMaxRounds = 12
	// DefaultExpNumCap bounds the numerator of a Pow exponent accepted
	// by eval.Eval, mirroring the source's "exp larger than 8" guard.
	DefaultExpNumCap = 8
)

// A Config holds the refinement parameters for one comparison. The zero
// value holds the defaults for every field, and so does a nil *Config:
// every accessor below is safe to call on one.
type Config struct {
	initialIter     int64
	initialDenomCap int64
	growFactor      int64
	maxRounds       int
	expNumCap       int64
	debug           map[string]bool
}

// New returns a Config initialized to the package defaults.
func New() *Config {
	return &Config{}
}

// InitialIter returns the iteration count the first evaluation round
// uses for both the π/e series and any Newton root refinement.
func (c *Config) InitialIter() int64 {
	if c == nil || c.initialIter == 0 {
		return DefaultInitialIter
	}
	return c.initialIter
}

// SetInitialIter overrides the starting iteration count.
func (c *Config) SetInitialIter(n int64) {
	c.initialIter = n
}

// InitialDenomCap returns the denominator ceiling the first evaluation
// round coarsens every interval endpoint to.
func (c *Config) InitialDenomCap() *big.Int {
	if c == nil || c.initialDenomCap == 0 {
		return big.NewInt(DefaultInitialDenomCap)
	}
	return big.NewInt(c.initialDenomCap)
}

// SetInitialDenomCap overrides the starting denominator cap.
func (c *Config) SetInitialDenomCap(n int64) {
	c.initialDenomCap = n
}

// GrowFactor returns the multiplier compare.Compare applies to the
// denominator cap each time it retries after failing to separate two
// intervals (iter itself grows by a flat one per round, per spec.md
// §4.6 step 5).
func (c *Config) GrowFactor() int64 {
	if c == nil || c.growFactor == 0 {
		return DefaultGrowFactor
	}
	return c.growFactor
}

// SetGrowFactor overrides the round-to-round growth multiplier.
func (c *Config) SetGrowFactor(n int64) {
	c.growFactor = n
}

// MaxRounds returns the number of refinement rounds compare.Compare
// will attempt before reporting Diverged.
func (c *Config) MaxRounds() int {
	if c == nil || c.maxRounds == 0 {
		return DefaultMaxRounds
	}
	return c.maxRounds
}

// SetMaxRounds overrides the refinement round budget.
func (c *Config) SetMaxRounds(n int) {
	c.maxRounds = n
}

// ExpNumCap returns the largest exponent numerator eval.Eval accepts
// for a Pow node, after separating the rational exponent into p/q.
func (c *Config) ExpNumCap() int64 {
	if c == nil || c.expNumCap == 0 {
		return DefaultExpNumCap
	}
	return c.expNumCap
}

// SetExpNumCap overrides the exponent-numerator cap.
func (c *Config) SetExpNumCap(n int64) {
	c.expNumCap = n
}

// Debug reports whether the named debug flag is enabled. Flag names
// are caller-defined strings, exactly as in ivy's config.Config; this
// package defines no flags of its own, only the toggle.
func (c *Config) Debug(name string) bool {
	if c == nil {
		return false
	}
	return c.debug[name]
}

// SetDebug enables or disables the named debug flag.
func (c *Config) SetDebug(name string, state bool) {
	if c.debug == nil {
		c.debug = make(map[string]bool)
	}
	c.debug[name] = state
}

// Debugf writes a formatted diagnostic to stderr if the named debug
// flag is enabled, collapsing the inline "if conf.Debug(flag) { ... }"
// checks scattered through ivy's scan/parse/run packages into one call
// at each site that wants one.
func (c *Config) Debugf(name, format string, args ...interface{}) {
	if !c.Debug(name) {
		return
	}
	fmt.Fprintf(os.Stderr, "neoprene: "+format+"\n", args...)
}
