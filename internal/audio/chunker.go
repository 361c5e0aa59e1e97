package audio

// DefaultChunkSize is the frame size used for WebSocket audio upload.
// Matches roughly one second of 16 kHz PCM-16 mono audio.
const DefaultChunkSize = 32 * 1024

// Chunks splits an audio payload into frames of at most size bytes.
// The returned slices alias the input; they must not be retained past
// a subsequent mutation of data. A non-positive size selects
// DefaultChunkSize.
func Chunks(data []byte, size int) [][]byte {
	if size <= 0 {
		size = DefaultChunkSize
	}
	if len(data) == 0 {
		return nil
	}

	frames := make([][]byte, 0, (len(data)+size-1)/size)
	for len(data) > size {
		frames = append(frames, data[:size])
		data = data[size:]
	}
	return append(frames, data)
}
