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

package digest_test

import (
	"testing"

	"github.com/thedjinn/psg-go/digest"
	"github.com/thedjinn/psg-go/test"
)

func TestAudioDigest(t *testing.T) {
	a := digest.NewAudio()
	b := digest.NewAudio()

	// identical streams produce identical fingerprints
	for i := 0; i < 1000; i++ {
		v := float64(i) / 1000.0
		a.SetAudio(v, -v)
		b.SetAudio(v, -v)
	}
	test.Equate(t, a.String(), b.String())

	// a diverging stream produces a different fingerprint
	c := digest.NewAudio()
	for i := 0; i < 1000; i++ {
		v := float64(i) / 1000.0
		if i == 999 {
			v = 1.0
		}
		c.SetAudio(v, -v)
	}
	test.Equate(t, a.String() != c.String(), true)
}

func TestAudioDigestChaining(t *testing.T) {
	// streams longer than the internal buffer must still be order
	// sensitive. swap two samples across a flush boundary and the
	// fingerprints must differ
	a := digest.NewAudio()
	b := digest.NewAudio()

	for i := 0; i < 500; i++ {
		a.SetAudio(float64(i), 0)
	}
	for i := 499; i >= 0; i-- {
		b.SetAudio(float64(i), 0)
	}

	test.Equate(t, a.String() != b.String(), true)
}
