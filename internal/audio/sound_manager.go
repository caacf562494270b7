// Package audio plays the game's sound effects through beep.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player plays the game's sound effects.
type Player interface {
	// PlayHit plays the landing sound.
	PlayHit()
	// PlayNudge plays the upward nudge sound.
	PlayNudge()
	// Close stops all sounds and releases the audio device.
	Close()
}

// Config holds audio output settings.
type Config struct {
	SampleRate int
	Volume     float64 // 0..1
}

// SoundManager plays effects through the speaker using a shared mixer
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a sound manager. Call Initialize before playing.
func NewSoundManager(cfg Config) *SoundManager {
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// PlayHit plays the landing sound
func (sm *SoundManager) PlayHit() {
	sm.play(CreateHitSound(sm.cfg))
}

// PlayNudge plays the nudge sound
func (sm *SoundManager) PlayNudge() {
	sm.play(CreateNudgeSound(sm.cfg))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// The speaker goroutine reads the mixer, so it must be locked too
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Close clears the mixer and closes the speaker
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// Nop is a silent Player used when audio is disabled or unavailable.
type Nop struct{}

func (Nop) PlayHit()   {}
func (Nop) PlayNudge() {}
func (Nop) Close()     {}
