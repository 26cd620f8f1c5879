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

// Package filter implements the band-limited rendering pipeline that sits
// between the raw chip output and the host sample rate.
//
// The chip's generators run at an internal tick rate of one eighth of the
// chip clock, which is both much higher than and incommensurate with any
// useful host sample rate. Converting one to the other naively would alias
// badly, so the pipeline works on an oversampled intermediate signal
// instead:
//
//  1. every chip tick is fed into a 4-point parabolic Interpolator
//  2. the interpolator is evaluated at Factor regularly spaced points per
//     output sample, filling the Decimator ring
//  3. the Decimator applies a windowed sinc FIR with a cutoff near the
//     output Nyquist frequency and throws away the intermediate points
//  4. the DCFilter removes any remaining DC offset from the decimated
//     signal
//
// All stages use float64 throughout. The fractional phase that tracks the
// position of each chip tick within the oversampled grid is owned by the
// chip driver in the parent package.
package filter
