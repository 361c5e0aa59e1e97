// Package audio provides small audio helpers for the Speech to Text
// client: WAV framing for PCM-16 samples, content-type sniffing, and
// chunked iteration for streaming uploads.
package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// WAVHeader is the canonical 44-byte RIFF/WAVE header for PCM data.
type WAVHeader struct {
	ChunkID       [4]byte // "RIFF"
	ChunkSize     uint32  // file size - 8
	Format        [4]byte // "WAVE"
	Subchunk1ID   [4]byte // "fmt "
	Subchunk1Size uint32  // 16 for PCM
	AudioFormat   uint16  // 1 for PCM
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32 // SampleRate * NumChannels * BitsPerSample / 8
	BlockAlign    uint16 // NumChannels * BitsPerSample / 8
	BitsPerSample uint16
	Subchunk2ID   [4]byte // "data"
	Subchunk2Size uint32  // bytes of sample data
}

// EncodeWAV encodes mono PCM-16 samples into a WAV byte stream.
func EncodeWAV(samples []int16, sampleRate int) ([]byte, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("audio: cannot encode empty sample slice")
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("audio: sample rate must be positive, got %d", sampleRate)
	}

	const (
		numChannels   = uint16(1)
		bitsPerSample = uint16(16)
	)
	dataSize := uint32(len(samples) * 2)

	header := WAVHeader{
		ChunkID:       [4]byte{'R', 'I', 'F', 'F'},
		ChunkSize:     36 + dataSize,
		Format:        [4]byte{'W', 'A', 'V', 'E'},
		Subchunk1ID:   [4]byte{'f', 'm', 't', ' '},
		Subchunk1Size: 16,
		AudioFormat:   1,
		NumChannels:   numChannels,
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(sampleRate) * uint32(numChannels) * uint32(bitsPerSample) / 8,
		BlockAlign:    numChannels * bitsPerSample / 8,
		BitsPerSample: bitsPerSample,
		Subchunk2ID:   [4]byte{'d', 'a', 't', 'a'},
		Subchunk2Size: dataSize,
	}

	buf := bytes.NewBuffer(make([]byte, 0, 44+len(samples)*2))
	if err := binary.Write(buf, binary.LittleEndian, header); err != nil {
		return nil, fmt.Errorf("audio: write WAV header: %w", err)
	}
	if err := binary.Write(buf, binary.LittleEndian, samples); err != nil {
		return nil, fmt.Errorf("audio: write sample data: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeWAV decodes a PCM-16 WAV byte stream back into samples and the
// sample rate recorded in the header.
func DecodeWAV(data []byte) ([]int16, int, error) {
	if len(data) < 44 {
		return nil, 0, fmt.Errorf("audio: WAV data too short: need at least 44 bytes, got %d", len(data))
	}

	var header WAVHeader
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &header); err != nil {
		return nil, 0, fmt.Errorf("audio: read WAV header: %w", err)
	}

	if string(header.ChunkID[:]) != "RIFF" || string(header.Format[:]) != "WAVE" {
		return nil, 0, fmt.Errorf("audio: not a RIFF/WAVE stream")
	}
	if header.AudioFormat != 1 {
		return nil, 0, fmt.Errorf("audio: unsupported WAV format %d, want PCM", header.AudioFormat)
	}
	if header.BitsPerSample != 16 {
		return nil, 0, fmt.Errorf("audio: unsupported bit depth %d, want 16", header.BitsPerSample)
	}

	payload := data[44:]
	if n := int(header.Subchunk2Size); n < len(payload) {
		payload = payload[:n]
	}

	samples := make([]int16, len(payload)/2)
	if err := binary.Read(bytes.NewReader(payload), binary.LittleEndian, &samples); err != nil {
		return nil, 0, fmt.Errorf("audio: read sample data: %w", err)
	}
	return samples, int(header.SampleRate), nil
}

// Magic prefixes for the audio formats the service accepts.
var (
	riffMagic = []byte("RIFF")
	oggMagic  = []byte("OggS")
	flacMagic = []byte("fLaC")
)

// SniffContentType inspects the first bytes of an audio payload and
// returns the matching media type. Unrecognized payloads fall back to
// application/octet-stream; callers should then set the content type
// explicitly.
func SniffContentType(data []byte) string {
	switch {
	case bytes.HasPrefix(data, riffMagic):
		return "audio/wav"
	case bytes.HasPrefix(data, oggMagic):
		return "audio/ogg"
	case bytes.HasPrefix(data, flacMagic):
		return "audio/flac"
	default:
		return "application/octet-stream"
	}
}
