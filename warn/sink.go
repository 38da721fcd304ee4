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

// Package warn is the UCI codec's diagnostic channel. Parsers never return
// rich error chains; instead they report zero or more warnings to a Sink as
// they go, and keep parsing as far as they can. This decouples "how do we
// respond to a malformed line" from "what is a malformed line."
package warn

// Sink accepts diagnostic values produced while parsing or formatting.
// Implementations must not change parser control flow; they only observe.
type Sink[E error] interface {
	Warn(err E)
}

// Ignore discards every warning it receives.
type Ignore[E error] struct{}

func (Ignore[E]) Warn(E) {}
