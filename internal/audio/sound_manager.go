// Package audio plays the runner's sound effects through the system speaker.
// Every method is safe to call when the speaker could not be initialized;
// the game runs silently in that case.
package audio

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	jumpDuration  = 120 * time.Millisecond
	crashDuration = 400 * time.Millisecond
)

// SoundManager manages all game audio
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64 // Exponent for effects.Volume, 0 = unchanged
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Enabled reports whether sounds actually reach the speaker.
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// SetVolume sets the master volume as a power of two (-1 halves, 1 doubles).
func (sm *SoundManager) SetVolume(v float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.volume = v
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	sm.initialized = false
}

// PlayJump plays a short rising chirp
func (sm *SoundManager) PlayJump() {
	sm.play(JumpSound())
}

// PlayCrash plays a decaying noisy thump
func (sm *SoundManager) PlayCrash() {
	sm.play(CrashSound(time.Now().UnixNano()))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	v := &effects.Volume{Streamer: s, Base: 2, Volume: sm.volume}
	speaker.Lock()
	sm.mixer.Add(v)
	speaker.Unlock()
}

// JumpSound returns the finite jump chirp streamer.
func JumpSound() beep.Streamer {
	return beep.Take(sampleRate.N(jumpDuration), NewChirpGenerator(sampleRate, 420, 880, jumpDuration))
}

// CrashSound returns the finite crash streamer. The seed drives the noise.
func CrashSound(seed int64) beep.Streamer {
	return beep.Take(sampleRate.N(crashDuration), NewCrashGenerator(sampleRate, seed, crashDuration))
}

// ChirpGenerator sweeps a sine from one frequency to another.
type ChirpGenerator struct {
	sr       beep.SampleRate
	from, to float64
	samples  int
	pos      int
	phase    float64
}

// NewChirpGenerator creates a chirp lasting d.
func NewChirpGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *ChirpGenerator {
	return &ChirpGenerator{
		sr:      sr,
		from:    from,
		to:      to,
		samples: sr.N(d),
	}
}

func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		p := math.Min(float64(g.pos)/float64(g.samples), 1)
		freq := g.from + (g.to-g.from)*p

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)

		// Quick attack, linear release
		envelope := math.Min(float64(g.pos)/float64(g.sr)/0.005, 1.0) * (1 - p)
		sample := 0.25 * envelope * math.Sin(2*math.Pi*g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChirpGenerator) Err() error {
	return nil
}

// CrashGenerator mixes a falling low tone with noise under an exponential decay.
type CrashGenerator struct {
	sr      beep.SampleRate
	rng     *rand.Rand
	samples int
	pos     int
}

// NewCrashGenerator creates a crash sound lasting d.
func NewCrashGenerator(sr beep.SampleRate, seed int64, d time.Duration) *CrashGenerator {
	return &CrashGenerator{
		sr:      sr,
		rng:     rand.New(rand.NewSource(seed)),
		samples: sr.N(d),
	}
}

func (g *CrashGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		freq := 140 - 80*math.Min(float64(g.pos)/float64(g.samples), 1)
		tone := 0.5 * math.Sin(2*math.Pi*freq*t)
		noise := 0.5 * (g.rng.Float64()*2 - 1)

		decay := math.Exp(-t * 9)
		sample := 0.3 * decay * (tone + noise)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *CrashGenerator) Err() error {
	return nil
}
