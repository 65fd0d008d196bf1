package game

import (
	"io"
	"math"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)

	DefaultSFXVolume = 0.58
	maxActiveHits    = 2
)

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundBoost SoundKind = iota
	SoundGrow
	SoundGateOpen
	SoundPortal
	SoundHit
	SoundExpire
	SoundReset
)

// AudioSystem manages procedural sound effects.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}
}

var globalAudio *AudioSystem

// activeHits limits overlapping impact sounds when grinding along a wall.
var activeHits int32

var sfxVolume = DefaultSFXVolume

// InitAudio initializes the audio system.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

func SetSFXVolume(vol float64) {
	sfxVolume = clampF(vol, 0, 1)
}

// PlaySound plays a procedurally generated sound effect.
func PlaySound(kind SoundKind) {
	PlaySoundWithGain(kind, 1.0)
}

func PlaySoundWithGain(kind SoundKind, gain float64) {
	if globalAudio == nil || gain <= 0 {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	if kind == SoundHit {
		if atomic.LoadInt32(&activeHits) >= maxActiveHits {
			return
		}
		atomic.AddInt32(&activeHits, 1)
	}
	samples := generateSound(kind)
	if len(samples) == 0 {
		if kind == SoundHit {
			atomic.AddInt32(&activeHits, -1)
		}
		return
	}
	go func() {
		if kind == SoundHit {
			defer atomic.AddInt32(&activeHits, -1)
		}
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume * clampF(gain, 0, 1))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat applies gentle tanh-like saturation, no hard clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
// carrier: base frequency, modRatio: modulator/carrier ratio, modIdx: modulation depth.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundBoost:
		return genArpeggio([]float64{523.25, 659.25, 783.99, 1046.5}, 75, 2.756) // C5 E5 G5 C6
	case SoundGrow:
		return genArpeggio([]float64{261.63, 329.63, 392.0, 523.25}, 95, 1.5) // C4 E4 G4 C5
	case SoundGateOpen:
		return genGateOpen()
	case SoundPortal:
		return genPortal()
	case SoundHit:
		return genHit()
	case SoundExpire:
		return genExpire()
	case SoundReset:
		return genReset()
	}
	return nil
}

// genArpeggio: ascending FM bell notes that ring into each other.
func genArpeggio(freqs []float64, noteMS int, modRatio float64) []byte {
	noteLen := SampleRate * noteMS / 1000
	tail := int(0.18 * SampleRate)
	total := len(freqs)*noteLen + tail
	mix := make([]float64, total)

	for fi, freq := range freqs {
		start := fi * noteLen
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.004, 0.55, 0.05, 0.35)
			s := fm(t, freq, modRatio, 5.0*env) * env * 0.38
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.09
			mix[start+j] += s
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genGateOpen: low mechanical clunk followed by a rising bell staircase.
func genGateOpen() []byte {
	notes := []float64{440, 554.37, 659.25, 880, 1108.73}
	noteStep := int(0.09 * SampleRate)
	total := len(notes)*noteStep + int(0.25*SampleRate)
	mix := make([]float64, total)

	clunk := int(0.08 * SampleRate)
	for i := 0; i < clunk; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(clunk)
		mix[i] += math.Sin(2*math.Pi*(110-60*p)*t) * math.Exp(-p*6) * 0.5
	}
	for fi, freq := range notes {
		start := clunk/2 + fi*noteStep
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.003, 0.65, 0.04, 0.28)
			s := fm(t, freq, 3.5, 5.5*env) * env * 0.28
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.07
			mix[start+j] += s
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genPortal: slow shimmering major chord with a rising sweep.
func genPortal() []byte {
	dur := 1.2
	n := int(dur * SampleRate)
	notes := []struct{ freq, onset float64 }{
		{261.63, 0.00}, // C4
		{329.63, 0.10}, // E4
		{392.00, 0.20}, // G4
		{523.25, 0.30}, // C5
	}
	mix := make([]float64, n)
	for _, note := range notes {
		start := int(note.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.02, 0.3, 0.45, 0.4)
			vib := 1 + 0.004*math.Sin(2*math.Pi*5.5*t)
			s := fm(t, note.freq*vib, 2.0, 1.6*env) * env * 0.24
			mix[i] += s
		}
	}
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		sweep := 300 + 1500*p*p
		mix[i] += math.Sin(2*math.Pi*sweep*t) * (1 - p) * 0.06
	}
	buf := makeBuf(n)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genHit: short noise crunch over a pitch-dropping thump.
func genHit() []byte {
	n := int(0.14 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(time.Now().UnixNano()) | 1
	lp := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		thumpFreq := 160 * math.Pow(0.1, p*3)
		thump := math.Sin(2*math.Pi*thumpFreq*t) * math.Exp(-p*14) * 0.6
		lp = lp*0.7 + lcg(&seed)*0.3
		body := lp * math.Pow(1-p, 4) * 0.45
		putStereoF32(buf, i, softSat((thump+body)*0.85))
	}
	return buf
}

// genExpire: descending FM tone as a modifier wears off.
func genExpire() []byte {
	n := int(0.22 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.015, 0.55, 0.1, 0.25)
		freq := 640 - 380*p
		s := fm(t, freq, 1.5, 2.8*(1-p)) * env * 0.4
		s += math.Sin(2*math.Pi*freq*2*t) * env * 0.08
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genReset: crisp click and brief falling tone.
func genReset() []byte {
	n := SampleRate * 65 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		freq := 1400 - 700*p
		s := fm(t, freq, 1.0, 0.6) * env * 0.38
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}
