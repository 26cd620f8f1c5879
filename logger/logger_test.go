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

package logger_test

import (
	"strings"
	"testing"

	"github.com/thedjinn/psg-go/logger"
	"github.com/thedjinn/psg-go/test"
)

func TestLogger(t *testing.T) {
	logger.Clear()

	s := &strings.Builder{}

	logger.Log("test", "this is a test")
	logger.Write(s)
	test.Equate(t, s.String(), "test: this is a test\n")

	logger.Logf("test", "this is test #%d", 2)
	s.Reset()
	logger.Write(s)
	test.Equate(t, s.String(), "test: this is a test\ntest: this is test #2\n")

	s.Reset()
	logger.Tail(s, 1)
	test.Equate(t, s.String(), "test: this is test #2\n")
}

func TestLoggerRepeats(t *testing.T) {
	logger.Clear()

	s := &strings.Builder{}

	logger.Log("test", "this is a test")
	logger.Log("test", "this is a test")
	logger.Log("test", "this is a test")
	logger.Write(s)
	test.Equate(t, s.String(), "test: this is a test (repeat x3)\n")
}
