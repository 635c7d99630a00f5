package laz

import (
	"golang.org/x/sync/errgroup"
)

// encodeChunks encodes chunks on up to workers goroutines and returns the
// frames in chunk order.
func encodeChunks(coder *chunkCoder, chunks [][]byte, workers int) ([][]byte, error) {
	frames := make([][]byte, len(chunks))

	if workers <= 1 || len(chunks) == 1 {
		for i, chunk := range chunks {
			frame, err := coder.encode(chunk)
			if err != nil {
				return nil, err
			}
			frames[i] = frame
		}
		return frames, nil
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i, chunk := range chunks {
		g.Go(func() error {
			frame, err := coder.encode(chunk)
			if err != nil {
				return err
			}
			frames[i] = frame
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return frames, nil
}

type rawFrame struct {
	header  frameHeader
	payload []byte
}

// decodeFrames decodes frames on up to workers goroutines and returns the
// records of each frame in order.
func decodeFrames(coder *chunkCoder, frames []rawFrame, workers int) ([][]byte, error) {
	chunks := make([][]byte, len(frames))

	var g errgroup.Group
	g.SetLimit(max(workers, 1))
	for i, frame := range frames {
		g.Go(func() error {
			records, err := coder.decode(frame.header, frame.payload)
			if err != nil {
				return err
			}
			chunks[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return chunks, nil
}
