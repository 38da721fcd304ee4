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

// Adapt borrows a Sink[F] and presents it as a Sink[E] by running every
// warning through conv before forwarding it. It lets a subparser report into
// its own error type while the caller only ever sees the outer type,
// without allocating a new sink.
type Adapt[E, F error] struct {
	sink Sink[F]
	conv func(E) F
}

func (a Adapt[E, F]) Warn(err E) {
	a.sink.Warn(a.conv(err))
}

// Map wraps sink so that callers reporting an E actually deliver conv(E) to
// it. Use this when the inner error type isn't already a variant of the
// outer one.
func Map[E, F error](sink Sink[F], conv func(E) F) Adapt[E, F] {
	return Adapt[E, F]{sink: sink, conv: conv}
}

// Widen is Map under a name that reads naturally at call sites where conv is
// itself the outer type's constructor for "this kind of nested error"
// (e.g. wrapping a parse.GoError as a parse.CommandError). Go has no implicit
// upcast between error types, so this is Map in disguise; the two names
// exist to mirror the two roles the spec assigns them.
func Widen[E, F error](sink Sink[F], conv func(E) F) Adapt[E, F] {
	return Map(sink, conv)
}
