// Copyright 2014 Eric Holmes.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chip8

import (
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"
)

const (
	buzzerSampleRate = beep.SampleRate(44100)
	buzzerToneHz     = 440
)

// SpeakerBuzzer implements the Buzzer capability by playing a sine tone
// through the default audio device. The streamer stays attached to the
// speaker for the lifetime of the buzzer and is paused or resumed on
// state changes.
type SpeakerBuzzer struct {
	ctrl *beep.Ctrl
}

// NewSpeakerBuzzer initializes the speaker and returns a silent buzzer.
func NewSpeakerBuzzer() (*SpeakerBuzzer, error) {
	if err := speaker.Init(buzzerSampleRate, buzzerSampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}

	tone, err := generators.SinTone(buzzerSampleRate, buzzerToneHz)
	if err != nil {
		return nil, err
	}

	ctrl := &beep.Ctrl{Streamer: tone, Paused: true}
	speaker.Play(ctrl)
	return &SpeakerBuzzer{ctrl: ctrl}, nil
}

// SetState implements Buzzer.
func (b *SpeakerBuzzer) SetState(on bool) error {
	speaker.Lock()
	b.ctrl.Paused = !on
	speaker.Unlock()
	return nil
}

// NullBuzzer discards buzzer state changes, for hosts without audio.
type NullBuzzer struct{}

// SetState implements Buzzer.
func (NullBuzzer) SetState(bool) error { return nil }
