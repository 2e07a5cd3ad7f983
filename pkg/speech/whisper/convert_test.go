package whisper

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestPCMToFloat32(t *testing.T) {
	t.Parallel()

	pcm := make([]byte, 6)
	binary.LittleEndian.PutUint16(pcm[0:], uint16(int16(0)))
	binary.LittleEndian.PutUint16(pcm[2:], uint16(int16(16384)))
	binary.LittleEndian.PutUint16(pcm[4:], uint16(int16(-32768)))

	got := pcmToFloat32(pcm)
	want := []float32{0, 0.5, -1.0}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > 1e-6 {
			t.Errorf("sample %d = %f, want %f", i, got[i], want[i])
		}
	}
}

func TestPCMToFloat32IgnoresTrailingByte(t *testing.T) {
	t.Parallel()

	if got := pcmToFloat32([]byte{0, 0, 42}); len(got) != 1 {
		t.Errorf("len = %d, want 1", len(got))
	}
}

func TestComputeRMS(t *testing.T) {
	t.Parallel()

	if got := computeRMS(nil); got != 0 {
		t.Errorf("computeRMS(nil) = %f, want 0", got)
	}

	// A constant-amplitude signal has RMS equal to that amplitude.
	pcm := make([]byte, 8)
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint16(pcm[i*2:], uint16(int16(1000)))
	}
	if got := computeRMS(pcm); math.Abs(got-1000) > 1e-9 {
		t.Errorf("computeRMS = %f, want 1000", got)
	}
}

func TestChunkDurationMs(t *testing.T) {
	t.Parallel()

	// One second of 16 kHz mono 16-bit audio is 32000 bytes.
	if got := chunkDurationMs(make([]byte, 32000), 16000); got != 1000 {
		t.Errorf("chunkDurationMs = %d, want 1000", got)
	}
	if got := chunkDurationMs(make([]byte, 32000), 0); got != 0 {
		t.Errorf("chunkDurationMs with zero rate = %d, want 0", got)
	}
}
