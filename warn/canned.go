// Copyright (C) 2025 Brigham Skarda

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.

// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.

// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package warn

import (
	"fmt"
	"io"
	"os"
)

// Stderr prints "error: <message>" for every warning it receives.
type Stderr[E error] struct {
	// Out defaults to os.Stderr when nil.
	Out io.Writer
}

func (s Stderr[E]) Warn(err E) {
	out := s.Out
	if out == nil {
		out = os.Stderr
	}
	fmt.Fprintf(out, "error: %s\n", err.Error())
}

// First records only the first warning it sees; later warnings are dropped.
type First[E error] struct {
	Value E
	set   bool
}

func (f *First[E]) Warn(err E) {
	if !f.set {
		f.Value = err
		f.set = true
	}
}

// Get returns the recorded warning, if any.
func (f *First[E]) Get() (E, bool) {
	return f.Value, f.set
}

// Last records the most recently seen warning, overwriting any prior one.
type Last[E error] struct {
	Value E
	set   bool
}

func (l *Last[E]) Warn(err E) {
	l.Value = err
	l.set = true
}

// Get returns the recorded warning, if any.
func (l *Last[E]) Get() (E, bool) {
	return l.Value, l.set
}

// All records every warning it sees, in the order they were reported.
type All[E error] struct {
	Values []E
}

func (a *All[E]) Warn(err E) {
	a.Values = append(a.Values, err)
}

// FromFunc routes every warning through a caller-supplied function.
type FromFunc[E error] struct {
	Func func(E)
}

func (f FromFunc[E]) Warn(err E) {
	f.Func(err)
}
