package tty

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/pthm-cable/aquarium/systems"
)

const (
	sampleRate   = beep.SampleRate(44100)
	plopFreq     = 660
	plopDuration = 40 * time.Millisecond
	plopGap      = 300 * time.Millisecond
)

// InitSpeaker opens the audio device for Chime.
func InitSpeaker() error {
	return speaker.Init(sampleRate, sampleRate.N(time.Second/10))
}

// CloseSpeaker releases the audio device.
func CloseSpeaker() {
	speaker.Close()
}

// Chime plays a short plop when a fish enters the tank and forwards every
// event to the next observer. Plops closer than plopGap are dropped.
type Chime struct {
	next systems.SwarmObserver
	now  func() time.Time
	play func()
	last time.Time
}

// NewChime wraps next. With speakerOn false events are forwarded silently.
func NewChime(next systems.SwarmObserver, speakerOn bool) *Chime {
	c := &Chime{next: next, now: time.Now, play: func() {}}
	if speakerOn {
		c.play = playPlop
	}
	return c
}

// RecordSpawn plays a plop and forwards the spawn.
func (c *Chime) RecordSpawn(warmup bool) {
	now := c.now()
	if c.last.IsZero() || now.Sub(c.last) >= plopGap {
		c.last = now
		c.play()
	}
	if c.next != nil {
		c.next.RecordSpawn(warmup)
	}
}

// RecordExit forwards the exit.
func (c *Chime) RecordExit() {
	if c.next != nil {
		c.next.RecordExit()
	}
}

// RecordAvoid forwards the avoid frame.
func (c *Chime) RecordAvoid() {
	if c.next != nil {
		c.next.RecordAvoid()
	}
}

func playPlop() {
	sine, err := generators.SineTone(sampleRate, plopFreq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(plopDuration), sine))
}
