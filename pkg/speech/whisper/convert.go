package whisper

import (
	"encoding/binary"
	"math"
)

// pcmToFloat32 converts 16-bit signed little-endian mono PCM audio to float32
// samples normalised to the range [-1.0, 1.0]. The input length must be even
// (two bytes per sample); any trailing odd byte is silently ignored.
func pcmToFloat32(pcm []byte) []float32 {
	n := len(pcm) / 2
	samples := make([]float32, n)
	for i := range n {
		sample := int16(binary.LittleEndian.Uint16(pcm[i*2 : i*2+2]))
		samples[i] = float32(sample) / 32768.0
	}
	return samples
}

// computeRMS returns the root-mean-square amplitude of 16-bit signed
// little-endian PCM audio. Returns 0 for an empty chunk.
func computeRMS(pcm []byte) float64 {
	n := len(pcm) / 2 // number of 16-bit samples
	if n == 0 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		sample := int16(binary.LittleEndian.Uint16(pcm[i*2 : i*2+2]))
		v := float64(sample)
		sum += v * v
	}
	return math.Sqrt(sum / float64(n))
}

// chunkDurationMs returns the duration of a mono PCM audio chunk in
// milliseconds, based on the sample rate. Returns 0 for invalid inputs.
func chunkDurationMs(chunk []byte, sampleRate int) int {
	if sampleRate <= 0 {
		return 0
	}
	bytesPerSec := sampleRate * (bitsPerSample / 8)
	return len(chunk) * 1000 / bytesPerSec
}
