// Copyright ©2026 The ctlfft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fourierdual

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/splitfft/ctlfft/signalops"
	"github.com/splitfft/ctlfft/splitz"
)

// Dual holds a time-domain operator chain U and its frequency-domain dual
// V, kept in lockstep: for every signal x, fft(U(x)) == V(fft(x)).
type Dual[F splitz.Float] struct {
	n    int
	time signalops.Composite[F]
	freq signalops.Composite[F]
}

// New creates an empty Dual for size-n transforms.
func New[F splitz.Float](n int) *Dual[F] {
	return &Dual[F]{n: n}
}

// U applies the accumulated time-domain composition to v.
func (d *Dual[F]) U(v splitz.View[F]) splitz.View[F] {
	return signalops.Apply[F](d.time, v)
}

// V applies the accumulated frequency-domain composition to v.
func (d *Dual[F]) V(v splitz.View[F]) splitz.View[F] {
	return signalops.Apply[F](d.freq, v)
}

// ComposeTime appends u to the time-domain chain and its derived dual to
// the frequency-domain chain. u's dual is built completely before either
// chain is mutated, so a failure leaves both chains exactly as they were
// (strong exception safety).
func (d *Dual[F]) ComposeTime(u signalops.Op[F]) error {
	v, err := d.timeToFreq(u)
	if err != nil {
		return errors.Wrap(err, "fourierdual: compose time")
	}
	d.time.Append(u)
	d.freq.Append(v)
	return nil
}

// ComposeFreq appends v to the frequency-domain chain and its derived dual
// to the time-domain chain, with the same strong exception safety as
// ComposeTime.
func (d *Dual[F]) ComposeFreq(v signalops.Op[F]) error {
	u, err := d.freqToTime(v)
	if err != nil {
		return errors.Wrap(err, "fourierdual: compose freq")
	}
	d.time.Append(u)
	d.freq.Append(v)
	return nil
}

// SetTimeFunc resets both chains and recomposes from c's flattened operator
// list, deriving each frequency-domain dual in turn.
func (d *Dual[F]) SetTimeFunc(c signalops.Composite[F]) error {
	d.clear()
	for _, op := range c.Ops {
		if err := d.ComposeTime(op); err != nil {
			return err
		}
	}
	return nil
}

// SetFreqFunc resets both chains and recomposes from c's flattened operator
// list, deriving each time-domain dual in turn.
func (d *Dual[F]) SetFreqFunc(c signalops.Composite[F]) error {
	d.clear()
	for _, op := range c.Ops {
		if err := d.ComposeFreq(op); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dual[F]) clear() {
	d.time = signalops.Composite[F]{}
	d.freq = signalops.Composite[F]{}
}

// ErrNoKnownDual is the sentinel wrapped into the error returned when an
// operator has no defined dual; callers can recover it with errors.Cause.
type ErrNoKnownDual struct {
	Op any
}

func (e *ErrNoKnownDual) Error() string {
	return fmt.Sprintf("operator %T has no known dual", e.Op)
}
