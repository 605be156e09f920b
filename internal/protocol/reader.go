package protocol

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/zeusync/podracer/internal/core/geometry"
	"github.com/zeusync/podracer/internal/core/pod"
)

// Init is the block sent once before the first frame.
type Init struct {
	Laps        int
	Checkpoints []geometry.Point
}

// Reader decodes the game input stream line by line.
//
// A stream that ends cleanly between two frames yields io.EOF; one that ends
// inside a block yields io.ErrUnexpectedEOF.
type Reader struct {
	sc   *bufio.Scanner
	line int
}

func NewReader(r io.Reader) *Reader {
	return &Reader{sc: bufio.NewScanner(r)}
}

// Line is the number of lines consumed so far.
func (r *Reader) Line() int { return r.line }

func (r *Reader) ReadInit() (Init, error) {
	v, err := r.ints(1, true)
	if err != nil {
		return Init{}, err
	}
	laps := v[0]
	if v, err = r.ints(1, false); err != nil {
		return Init{}, err
	}
	count := v[0]
	if laps <= 0 || count < 2 {
		return Init{}, fmt.Errorf("%w: %d laps, %d checkpoints", ErrInvalidInit, laps, count)
	}
	in := Init{Laps: laps, Checkpoints: make([]geometry.Point, count)}
	for i := range in.Checkpoints {
		xy, err := r.ints(2, false)
		if err != nil {
			return Init{}, err
		}
		in.Checkpoints[i] = geometry.Point{X: xy[0], Y: xy[1]}
	}
	return in, nil
}

// ReadFrame reads the four pod lines of a tick.
func (r *Reader) ReadFrame() (pod.Frame, error) {
	var f pod.Frame
	for i := 0; i < 4; i++ {
		v, err := r.ints(6, i == 0)
		if err != nil {
			return pod.Frame{}, err
		}
		t := pod.Telemetry{
			Position:       geometry.Point{X: v[0], Y: v[1]},
			Velocity:       geometry.Point{X: v[2], Y: v[3]},
			Angle:          v[4],
			NextCheckpoint: v[5],
		}
		if i < 2 {
			f.Mine[i] = t
		} else {
			f.Opponents[i-2] = t
		}
	}
	return f, nil
}

// ReadLegacyFrame reads the two lines of a single-pod tick.
func (r *Reader) ReadLegacyFrame() (pod.LegacyFrame, error) {
	v, err := r.ints(6, true)
	if err != nil {
		return pod.LegacyFrame{}, err
	}
	o, err := r.ints(2, false)
	if err != nil {
		return pod.LegacyFrame{}, err
	}
	return pod.LegacyFrame{
		Position:           geometry.Point{X: v[0], Y: v[1]},
		Checkpoint:         geometry.Point{X: v[2], Y: v[3]},
		CheckpointDistance: v[4],
		CheckpointAngle:    v[5],
		Opponent:           geometry.Point{X: o[0], Y: o[1]},
	}, nil
}

// ints reads one line holding exactly n integers. first marks a block
// boundary, where running out of input is a clean io.EOF.
func (r *Reader) ints(n int, first bool) ([]int, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return nil, fmt.Errorf("read line %d: %w", r.line+1, err)
		}
		if first {
			return nil, io.EOF
		}
		return nil, io.ErrUnexpectedEOF
	}
	r.line++
	fields := strings.Fields(r.sc.Text())
	if len(fields) != n {
		return nil, fmt.Errorf("%w %d: want %d values, got %d", ErrMalformedLine, r.line, n, len(fields))
	}
	out := make([]int, n)
	for i, s := range fields {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%w %d: %w", ErrMalformedLine, r.line, errors.Unwrap(err))
		}
		out[i] = v
	}
	return out, nil
}
