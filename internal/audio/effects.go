package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Sound identifies one of the runner's effects.
type Sound int

const (
	SoundJump Sound = iota
	SoundLand
	SoundStageUp
	SoundGameOver
)

func (s Sound) String() string {
	switch s {
	case SoundJump:
		return "jump"
	case SoundLand:
		return "land"
	case SoundStageUp:
		return "stage-up"
	case SoundGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// sweep is an oscillator whose frequency slides linearly from one value to
// another over its duration.
type sweep struct {
	from, to float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewSweep creates a sliding oscillator. from == to gives a plain tone.
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		from:     from,
		to:       to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(1)),
	}
}

func (o *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.duration)
		freq := o.from + (o.to-o.from)*t
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *sweep) Err() error { return nil }

// envelope applies attack/release shaping to a stream and cuts it at the
// given duration.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	if att+rel > total {
		att, rel = total/2, total-total/2
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.totalSamples - e.releaseSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream by a linear factor.
// math.Log2(0) is -Inf, so zero volume becomes Silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// shaped is a tone with a short attack and a release over most of its length.
func shaped(s beep.Streamer, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(s, d, 5*time.Millisecond, d*2/3, rate)
}

// jumpSound is a quick upward chirp.
func jumpSound(rate beep.SampleRate) beep.Streamer {
	d := 120 * time.Millisecond
	return shaped(NewSweep(440, 880, d, WaveSquare, rate), d, rate)
}

// landSound is a short low thump: a sine under a burst of noise.
func landSound(rate beep.SampleRate) beep.Streamer {
	d := 60 * time.Millisecond
	var body beep.Streamer = NewSweep(140, 70, d, WaveSine, rate)
	if tone, err := generators.SineTone(rate, 110); err == nil {
		body = beep.Take(rate.N(d), tone)
	}
	return beep.Mix(
		newVolume(shaped(body, d, rate), 0.8),
		newVolume(shaped(NewSweep(0, 0, d, WaveNoise, rate), d, rate), 0.2),
	)
}

// stageUpSound is a rising three-note arpeggio (C6 E6 G6).
func stageUpSound(rate beep.SampleRate) beep.Streamer {
	d := 70 * time.Millisecond
	notes := []float64{1046.50, 1318.51, 1567.98}
	seq := make([]beep.Streamer, len(notes))
	for i, f := range notes {
		seq[i] = shaped(NewSweep(f, f, d, WaveSquare, rate), d, rate)
	}
	return beep.Seq(seq...)
}

// gameOverSound is a slow falling tone.
func gameOverSound(rate beep.SampleRate) beep.Streamer {
	d := 600 * time.Millisecond
	return shaped(NewSweep(440, 110, d, WaveSquare, rate), d, rate)
}

// Effect builds a fresh streamer for sound at the given volume.
// Streamers are single use.
func Effect(sound Sound, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch sound {
	case SoundJump:
		s = jumpSound(rate)
	case SoundLand:
		s = landSound(rate)
	case SoundStageUp:
		s = stageUpSound(rate)
	case SoundGameOver:
		s = gameOverSound(rate)
	default:
		return nil
	}
	return newVolume(s, volume)
}
