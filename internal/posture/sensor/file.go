package sensor

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/2beens/sportai/internal/posture"
)

const maxFrameLineSize = 1 << 20

// FileSensor replays frames recorded as JSON lines, one frame per line.
type FileSensor struct {
	path string
	fps  int
}

// NewFileSensor returns a sensor reading path. A positive fps paces the
// replay, otherwise frames are yielded as fast as they are read.
func NewFileSensor(path string, fps int) *FileSensor {
	return &FileSensor{
		path: path,
		fps:  fps,
	}
}

func (s *FileSensor) Open(_ context.Context) (posture.FrameStream, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open recording: %w", err)
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxFrameLineSize)

	stream := &fileStream{
		file:    f,
		scanner: scanner,
		closed:  make(chan struct{}),
	}
	if s.fps > 0 {
		stream.ticker = time.NewTicker(time.Second / time.Duration(s.fps))
	}

	return stream, nil
}

type fileStream struct {
	file    *os.File
	scanner *bufio.Scanner
	ticker  *time.Ticker
	line    int

	closeOnce sync.Once
	closed    chan struct{}
	closeErr  error
}

func (s *fileStream) Next(ctx context.Context) (posture.Frame, error) {
	if s.ticker != nil {
		select {
		case <-s.ticker.C:
		case <-s.closed:
			return posture.Frame{}, errors.New("stream closed")
		case <-ctx.Done():
			return posture.Frame{}, ctx.Err()
		}
	}

	for s.scanner.Scan() {
		s.line++
		line := bytes.TrimSpace(s.scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		frame, err := DecodeFrame(line)
		if err != nil {
			return posture.Frame{}, fmt.Errorf("line %d: %w", s.line, err)
		}
		return frame, nil
	}

	if err := s.scanner.Err(); err != nil {
		return posture.Frame{}, fmt.Errorf("read recording: %w", err)
	}
	return posture.Frame{}, io.EOF
}

func (s *fileStream) Close() error {
	s.closeOnce.Do(func() {
		close(s.closed)
		if s.ticker != nil {
			s.ticker.Stop()
		}
		s.closeErr = s.file.Close()
	})
	return s.closeErr
}
