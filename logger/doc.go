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

// Package logger is the central log for the whole application. Log entries
// are tagged with the sub-system that raised them and identical consecutive
// entries are folded into a repeat count.
//
// The chip emulation itself never logs. Logging is reserved for the
// supporting packages (wavwriter, sdlaudio, performance) and for the command
// line program.
package logger
