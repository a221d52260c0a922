// Package audio provides windowed WAV file reading for silence scanning.
//
// Scans only ever look at a handful of short windows inside each file, so
// the reader never decodes a file front to back. go-audio/wav parses and
// validates the header; window reads then seek the underlying file directly
// into the PCM data chunk and decode just the requested run of frames.
package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/wav"
)

// WAV format codes from the fmt chunk.
const (
	formatPCM       = 1
	formatIEEEFloat = 3
)

// Metadata describes an opened WAV file.
type Metadata struct {
	SampleRate  int
	Channels    int
	BitDepth    int
	TotalFrames int64
	Duration    float64 // seconds; 0 if sample rate is unknown
}

// WindowReader is the contract the silence scanner drives. It exists so
// tests can substitute an instrumented reader and count opens and reads.
type WindowReader interface {
	// ReadWindow decodes up to frames frames starting at frameOffset,
	// returning interleaved samples normalised to [-1, 1]. Fewer frames
	// than requested (or none) are returned at end of stream.
	ReadWindow(frameOffset int64, frames int) ([]float64, error)
	Close() error
}

// Reader reads bounded windows of frames from an uncompressed WAV file.
type Reader struct {
	f           *os.File
	format      uint16
	bitDepth    int
	channels    int
	blockAlign  int // bytes per frame across all channels
	pcmStart    int64
	totalFrames int64
}

// Open opens a WAV file and parses its header. The returned Reader must be
// closed by the caller on every path.
func Open(path string) (*Reader, *Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open audio file: %w", err)
	}

	dec := wav.NewDecoder(f)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("failed to parse WAV header: %w", err)
	}

	if dec.WavAudioFormat != formatPCM && dec.WavAudioFormat != formatIEEEFloat {
		f.Close()
		return nil, nil, fmt.Errorf("unsupported WAV encoding (format %d), expected PCM or IEEE float", dec.WavAudioFormat)
	}
	if dec.NumChans == 0 || dec.SampleRate == 0 {
		f.Close()
		return nil, nil, fmt.Errorf("invalid WAV header: %d channels, %d Hz", dec.NumChans, dec.SampleRate)
	}
	if err := validBitDepth(dec.WavAudioFormat, int(dec.BitDepth)); err != nil {
		f.Close()
		return nil, nil, err
	}

	// Position the file at the start of the data chunk so window reads can
	// address frames with plain byte arithmetic.
	if err := dec.FwdToPCM(); err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("failed to locate PCM data: %w", err)
	}
	pcmStart, err := f.Seek(0, io.SeekCurrent)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("failed to locate PCM data: %w", err)
	}

	blockAlign := int(dec.NumChans) * int(dec.BitDepth) / 8
	totalFrames := dec.PCMLen() / int64(blockAlign)

	meta := &Metadata{
		SampleRate:  int(dec.SampleRate),
		Channels:    int(dec.NumChans),
		BitDepth:    int(dec.BitDepth),
		TotalFrames: totalFrames,
		Duration:    float64(totalFrames) / float64(dec.SampleRate),
	}

	reader := &Reader{
		f:           f,
		format:      dec.WavAudioFormat,
		bitDepth:    int(dec.BitDepth),
		channels:    int(dec.NumChans),
		blockAlign:  blockAlign,
		pcmStart:    pcmStart,
		totalFrames: totalFrames,
	}

	return reader, meta, nil
}

// validBitDepth checks the bit depth against the sample format.
func validBitDepth(format uint16, bits int) error {
	switch format {
	case formatPCM:
		switch bits {
		case 8, 16, 24, 32:
			return nil
		}
	case formatIEEEFloat:
		switch bits {
		case 32, 64:
			return nil
		}
	}
	return fmt.Errorf("unsupported bit depth %d for WAV format %d", bits, format)
}

// ReadWindow reads up to frames frames starting at frameOffset. Requests
// past the end of the data chunk return an empty slice; requests that run
// over the tail are truncated to the frames that exist.
func (r *Reader) ReadWindow(frameOffset int64, frames int) ([]float64, error) {
	if frames <= 0 || frameOffset < 0 || frameOffset >= r.totalFrames {
		return nil, nil
	}
	if remaining := r.totalFrames - frameOffset; int64(frames) > remaining {
		frames = int(remaining)
	}

	if _, err := r.f.Seek(r.pcmStart+frameOffset*int64(r.blockAlign), io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to seek to frame %d: %w", frameOffset, err)
	}

	raw := make([]byte, frames*r.blockAlign)
	n, err := io.ReadFull(r.f, raw)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("failed to read %d frames at offset %d: %w", frames, frameOffset, err)
	}

	// Drop any trailing partial frame from a truncated file.
	raw = raw[:n-n%r.blockAlign]
	return r.decodeSamples(raw)
}

// decodeSamples converts raw little-endian PCM bytes to normalised float64
// samples, interleaved across channels.
func (r *Reader) decodeSamples(raw []byte) ([]float64, error) {
	bytesPerSample := r.bitDepth / 8
	samples := make([]float64, len(raw)/bytesPerSample)

	switch {
	case r.format == formatPCM && r.bitDepth == 8:
		// 8-bit WAV is unsigned with a 128 midpoint.
		for i := range samples {
			samples[i] = (float64(raw[i]) - 128) / 128
		}
	case r.format == formatPCM && r.bitDepth == 16:
		for i := range samples {
			v := int16(binary.LittleEndian.Uint16(raw[i*2:]))
			samples[i] = float64(v) / 32768
		}
	case r.format == formatPCM && r.bitDepth == 24:
		for i := range samples {
			b := raw[i*3:]
			v := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
			if v&0x800000 != 0 {
				v -= 0x1000000
			}
			samples[i] = float64(v) / 8388608
		}
	case r.format == formatPCM && r.bitDepth == 32:
		for i := range samples {
			v := int32(binary.LittleEndian.Uint32(raw[i*4:]))
			samples[i] = float64(v) / 2147483648
		}
	case r.format == formatIEEEFloat && r.bitDepth == 32:
		for i := range samples {
			samples[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(raw[i*4:])))
		}
	case r.format == formatIEEEFloat && r.bitDepth == 64:
		for i := range samples {
			samples[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[i*8:]))
		}
	default:
		return nil, fmt.Errorf("unsupported bit depth %d for WAV format %d", r.bitDepth, r.format)
	}

	return samples, nil
}

// Close releases the underlying file handle.
func (r *Reader) Close() error {
	return r.f.Close()
}
