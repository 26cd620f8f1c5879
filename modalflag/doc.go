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

// Package modalflag wraps the flag package in the Go standard library,
// adding a convenient way of handling program modes. A mode is a special
// command line argument that selects a different operation of the program,
// each mode with its own set of flags, in the manner of the go command's
// build, test, etc.
//
// Basic usage differs from the flag package in that arguments are attached
// with NewArgs() before calling Parse():
//
//	md := Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("render", "play")
//	p, err := md.Parse()
//
// After a successful Parse() the selected mode is available through the
// Mode() function. Note that mode comparisons are case insensitive and that
// Mode() returns the upper case version of the mode name.
//
// Each mode can then declare its own flags and sub-modes by starting a new
// parsing round with NewMode():
//
//	switch md.Mode() {
//	case "RENDER":
//		md.NewMode()
//		duration := md.AddString("duration", "1s", "length of rendering")
//		p, err := md.Parse()
//		...
//	}
//
// Arguments that are neither flags nor a listed sub-mode are available
// through RemainingArgs() and GetArg().
//
// Help messages are printed to the Output field, which should be specified
// before calling Parse(). The ParseHelp result indicates that a help message
// has been printed and that the program should do nothing further.
package modalflag
