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

package uci

import (
	"errors"
	"fmt"
)

// Permille is a non-negative integer in [0, 1000], a rational in [0, 1]
// expressed in parts per thousand (like hashfull/cpuload).
type Permille struct{ amount uint16 }

// ErrPermilleOutOfRange is returned by NewPermille when amount > 1000.
var ErrPermilleOutOfRange = errors.New("permille amount must be between 0 and 1000")

// NewPermille checks amount and fails if it exceeds 1000.
func NewPermille(amount uint16) (Permille, error) {
	if amount > 1000 {
		return Permille{}, ErrPermilleOutOfRange
	}
	return Permille{amount: amount}, nil
}

// NewPermilleTruncated saturates amount at 1000 instead of failing.
func NewPermilleTruncated(amount uint64) Permille {
	if amount > 1000 {
		amount = 1000
	}
	return Permille{amount: uint16(amount)}
}

// Amount returns the raw 0..=1000 value.
func (p Permille) Amount() uint16 { return p.amount }

// Float32 returns the value divided by 1000.
func (p Permille) Float32() float32 { return float32(p.amount) / 1000 }

// Float64 returns the value divided by 1000.
func (p Permille) Float64() float64 { return float64(p.amount) / 1000 }

// ErrPermilleRange is returned by PermilleFromFloat64 when v is outside [0, 1].
var ErrPermilleRange = errors.New("value is outside [0, 1]")

// PermilleFromFloat64 rounds v*1000 to the nearest integer permille value,
// failing if v is outside [0, 1].
func PermilleFromFloat64(v float64) (Permille, error) {
	if v < 0 || v > 1 {
		return Permille{}, ErrPermilleRange
	}
	return Permille{amount: uint16(v*1000 + 0.5)}, nil
}

// PermilleFromFloat32 is PermilleFromFloat64 for a float32 input.
func PermilleFromFloat32(v float32) (Permille, error) {
	return PermilleFromFloat64(float64(v))
}

func (p Permille) String() string { return fmt.Sprintf("%d", p.amount) }

// TriStatus is the three-way status UCI reports for copy protection and
// registration.
type TriStatus uint8

const (
	TriStatusOk TriStatus = iota
	TriStatusChecking
	TriStatusError
)

func (s TriStatus) String() string {
	switch s {
	case TriStatusOk:
		return "ok"
	case TriStatusChecking:
		return "checking"
	case TriStatusError:
		return "error"
	default:
		return "unknown"
	}
}
