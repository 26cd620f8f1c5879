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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/thedjinn/psg-go/digest"
	"github.com/thedjinn/psg-go/hardware/psg"
	"github.com/thedjinn/psg-go/logger"
	"github.com/thedjinn/psg-go/modalflag"
	"github.com/thedjinn/psg-go/notes"
	"github.com/thedjinn/psg-go/performance"
	"github.com/thedjinn/psg-go/sdlaudio"
	"github.com/thedjinn/psg-go/statsview"
	"github.com/thedjinn/psg-go/version"
	"github.com/thedjinn/psg-go/wavwriter"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("TONE", "PLAY", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "TONE":
		err = tone(md)
	case "PLAY":
		err = play(md)
	case "PERFORMANCE":
		err = perform(md)
	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md.String(), err)
		os.Exit(20)
	}
}

// chipFlags declares the flags shared by every mode that builds a PSG.
func chipFlags(md *modalflag.Modes) (*float64, *uint, *string) {
	clock := md.AddFloat64("clock", 1789772.5, "chip clock rate in Hz")
	rate := md.AddUint("rate", 44100, "output sample rate in Hz")
	chip := md.AddString("chip", "YM", "chip type: AY, YM")
	return clock, rate, chip
}

// newPSG builds a PSG from the values of the flags declared by chipFlags().
func newPSG(clock float64, rate uint, chip string) (*psg.PSG, error) {
	chipType, err := psg.ParseChipType(chip)
	if err != nil {
		return nil, err
	}
	return psg.New(clock, uint32(rate), chipType)
}

// program a simple three component test signal: a flat tone on channel A, an
// envelope swept tone a fifth higher on channel B and optionally a noise
// wash on channel C.
func programTestSignal(p *psg.PSG, clock float64, pitch float64, noise bool) {
	p.SetTonePeriod(0, notes.MIDIPitchToTonePeriod(pitch, clock))
	p.SetAmplitude(0, 12)
	p.SetToneDisabled(0, false)
	p.Channel(0).SetPanning(0.25, true)

	p.SetTonePeriod(1, notes.MIDIPitchToTonePeriod(pitch+7, clock))
	p.SetEnvelopeEnabled(1, true)
	p.SetToneDisabled(1, false)
	p.Channel(1).SetPanning(0.75, true)
	p.SetEnvelopePeriod(notes.FrequencyToEnvelopePeriod(1.5, clock))
	p.SetEnvelopeShape(14)

	if noise {
		p.SetNoisePeriod(16)
		p.SetAmplitude(2, 6)
		p.SetNoiseDisabled(2, false)
	}
}

func tone(md *modalflag.Modes) error {
	md.NewMode()

	clock, rate, chip := chipFlags(md)
	pitch := md.AddFloat64("note", 69.0, "MIDI pitch of the tone")
	freq := md.AddFloat64("freq", 0.0, "tone frequency in Hz, overrides -note")
	noise := md.AddBool("noise", false, "add a noise component")
	duration := md.AddDuration("duration", time.Second, "length of the rendering")
	output := md.AddString("o", "out.wav", "output file")
	fingerprint := md.AddBool("fingerprint", false, "print a digest of the rendered audio")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *freq > 0.0 {
		*pitch = notes.FrequencyToMIDIPitch(*freq)
	}

	gen, err := newPSG(*clock, *rate, *chip)
	if err != nil {
		return err
	}
	programTestSignal(gen, *clock, *pitch, *noise)

	aw := wavwriter.New(*output, uint32(*rate))
	dig := digest.NewAudio()

	numSamples := int(duration.Seconds() * float64(*rate))
	for i := 0; i < numSamples; i++ {
		left, right := gen.Render()
		aw.SetAudio(left, right)
		if *fingerprint {
			dig.SetAudio(left, right)
		}
	}

	err = aw.EndMixing()
	if err != nil {
		return err
	}

	if *fingerprint {
		fmt.Println(dig.String())
	}

	return nil
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	clock, rate, chip := chipFlags(md)
	pitch := md.AddFloat64("note", 69.0, "MIDI pitch of the tone")
	noise := md.AddBool("noise", false, "add a noise component")
	duration := md.AddDuration("duration", 5*time.Second, "length of playback")
	stats := md.AddBool("statsview", false, "launch the stats viewing server")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("* statsview not available in this build")
		}
	}

	gen, err := newPSG(*clock, *rate, *chip)
	if err != nil {
		return err
	}
	programTestSignal(gen, *clock, *pitch, *noise)

	aud, err := sdlaudio.NewAudio(uint32(*rate))
	if err != nil {
		return err
	}

	// stop playback on ctrl-c
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	numSamples := int(duration.Seconds() * float64(*rate))

done:
	for i := 0; i < numSamples; i++ {
		left, right := gen.Render()
		err = aud.SetAudio(left, right)
		if err != nil {
			return err
		}

		select {
		case <-intChan:
			fmt.Println("\r")
			break done
		default:
		}
	}

	return aud.EndMixing()
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	clock, rate, chip := chipFlags(md)
	profile := md.AddString("profile", "none", "run with profiling: NONE, CPU, MEM, ALL")
	duration := md.AddString("duration", "5s", "run duration")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prof, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	chipType, err := psg.ParseChipType(*chip)
	if err != nil {
		return err
	}

	return performance.Check(os.Stdout, prof, *clock, uint32(*rate), chipType, *duration)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("v", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	vers, rev, _ := version.Version()
	fmt.Printf("%s (%s)\n", version.ApplicationName, vers)
	if *revision {
		fmt.Println(rev)
	}

	return nil
}
