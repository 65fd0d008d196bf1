package game

import (
	"encoding/binary"
	"io"
	"math"
	"testing"
)

func TestGeneratedSoundsAreBounded(t *testing.T) {
	kinds := []SoundKind{SoundBoost, SoundGrow, SoundGateOpen, SoundPortal, SoundHit, SoundExpire, SoundReset}
	for _, k := range kinds {
		buf := generateSound(k)
		if len(buf) == 0 || len(buf)%8 != 0 {
			t.Fatalf("sound %d: %d bytes", k, len(buf))
		}
		for i := 0; i < len(buf); i += 4 {
			v := math.Float32frombits(binary.LittleEndian.Uint32(buf[i:]))
			if math.IsNaN(float64(v)) || v < -1 || v > 1 {
				t.Fatalf("sound %d: sample %d out of range: %v", k, i/4, v)
			}
		}
	}
}

func TestPlayWithoutAudioIsNoop(t *testing.T) {
	PlaySoundWithGain(SoundHit, 1)
	if activeHits != 0 {
		t.Fatalf("activeHits=%d", activeHits)
	}
}

func TestSoundReaderDrains(t *testing.T) {
	r := &soundReader{data: make([]byte, 10)}
	b, err := io.ReadAll(r)
	if err != nil || len(b) != 10 {
		t.Fatalf("n=%d err=%v", len(b), err)
	}
}
