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

package filter

// Interpolator is a 2nd order 4-point parabolic interpolator with cached
// coefficients, allowing the same input value (and its history) to be
// evaluated at multiple intermediate points.
//
// The interpolation algorithm is described in "Polynomial Interpolators for
// High-Quality Resampling of Oversampled Audio" by Olli Niemitalo:
//
// http://yehar.com/blog/wp-content/uploads/2009/08/deip.pdf
type Interpolator struct {
	y [4]float64
	c [3]float64
}

// Feed a new value into the interpolator, discarding the oldest history
// value and recalculating the polynomial coefficients.
func (ip *Interpolator) Feed(input float64) {
	ip.y[0] = ip.y[1]
	ip.y[1] = ip.y[2]
	ip.y[2] = ip.y[3]
	ip.y[3] = input

	y1 := ip.y[2] - ip.y[0]

	ip.c[0] = 0.5*ip.y[1] + 0.25*(ip.y[0]+ip.y[2])
	ip.c[1] = 0.5 * y1
	ip.c[2] = 0.25 * (ip.y[3] - ip.y[1] - y1)
}

// Interpolate the intermediate value at position x, where x is in the range
// 0.0 to 1.0.
func (ip *Interpolator) Interpolate(x float64) float64 {
	return (ip.c[2]*x+ip.c[1])*x + ip.c[0]
}
