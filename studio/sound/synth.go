package sound

import (
	"encoding/binary"
	"math"
)

// DefaultSampleRate is the output sample rate used when none is configured.
const DefaultSampleRate = 44100

// Samples renders id as mono signed 16-bit samples.
func Samples(id ID, sampleRate int) []int16 {
	switch id {
	case Kick:
		return kick(sampleRate)
	case Write:
		return blip(sampleRate)
	default:
		return nil
	}
}

// kick is a sine sweep from 150Hz down to 45Hz under an exponential decay.
func kick(sampleRate int) []int16 {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	const (
		length = 0.35
		f0     = 150.0
		f1     = 45.0
		decay  = 9.0
	)
	n := int(length * float64(sampleRate))
	out := make([]int16, n)
	phase := 0.0
	for i := range out {
		t := float64(i) / float64(sampleRate)
		freq := f1 + (f0-f1)*math.Exp(-t*30)
		phase += 2 * math.Pi * freq / float64(sampleRate)
		amp := math.Exp(-t * decay)
		out[i] = int16(math.Sin(phase) * amp * 0.9 * math.MaxInt16)
	}
	return out
}

// blip is two short square-ish tones a fifth apart.
func blip(sampleRate int) []int16 {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	const (
		length = 0.12
		f0     = 660.0
		f1     = 990.0
		decay  = 28.0
	)
	n := int(length * float64(sampleRate))
	out := make([]int16, n)
	phase := 0.0
	for i := range out {
		t := float64(i) / float64(sampleRate)
		freq := f0
		if t >= length/3 {
			freq = f1
		}
		phase += 2 * math.Pi * freq / float64(sampleRate)
		// soft-clipped sine, brighter than the kick
		v := math.Tanh(3 * math.Sin(phase))
		out[i] = int16(v * math.Exp(-t*decay) * 0.6 * math.MaxInt16)
	}
	return out
}

// StereoPCM16 interleaves mono samples into little-endian 16-bit stereo.
func StereoPCM16(samples []int16) []byte {
	buf := make([]byte, len(samples)*4)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(s))
	}
	return buf
}
