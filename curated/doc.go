// This file is part of psg-go.
//
// psg-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// psg-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with psg-go.  If not, see <https://www.gnu.org/licenses/>.

// Package curated provides the error type used throughout psg-go. A curated
// error keeps the format pattern with which it was created, meaning errors
// can be compared against the pattern with the Is() and Has() functions
// without resorting to string inspection at the call site.
//
// The convention is for packages to declare their error patterns as exported
// string constants. For example, the hardware/psg package declares the
// patterns for every construction failure it can produce:
//
//	_, err := psg.New(0, 44100, psg.YM)
//	if curated.Is(err, psg.InvalidClockRate) {
//		...
//	}
//
// Errors created by Errorf() can wrap other curated errors, in which case
// Has() will find a pattern anywhere in the chain.
package curated
