package protocol

import (
	"bufio"
	"io"
	"strconv"

	"github.com/zeusync/podracer/internal/core/pod"
	"github.com/zeusync/podracer/internal/core/strategy"
)

// Writer encodes action lines, and for traces the referee side of the stream.
// Every Write call flushes, so a turn is never left half written.
type Writer struct {
	w   *bufio.Writer
	buf []byte
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w), buf: make([]byte, 0, 64)}
}

// WriteActions writes one line per action, in order.
func (w *Writer) WriteActions(actions ...strategy.Action) error {
	for _, a := range actions {
		b := w.buf[:0]
		b = strconv.AppendInt(b, int64(a.Target.X), 10)
		b = append(b, ' ')
		b = strconv.AppendInt(b, int64(a.Target.Y), 10)
		b = append(b, ' ')
		b = append(b, a.Power()...)
		b = append(b, '\n')
		w.buf = b
		if _, err := w.w.Write(b); err != nil {
			return err
		}
	}
	return w.w.Flush()
}

func (w *Writer) WriteInit(in Init) error {
	w.ints(in.Laps)
	w.ints(len(in.Checkpoints))
	for _, c := range in.Checkpoints {
		w.ints(c.X, c.Y)
	}
	return w.w.Flush()
}

func (w *Writer) WriteFrame(f pod.Frame) error {
	for _, t := range append(f.Mine[:], f.Opponents[:]...) {
		w.ints(t.Position.X, t.Position.Y, t.Velocity.X, t.Velocity.Y, t.Angle, t.NextCheckpoint)
	}
	return w.w.Flush()
}

// ints buffers one line; write errors surface on Flush.
func (w *Writer) ints(v ...int) {
	b := w.buf[:0]
	for i, n := range v {
		if i > 0 {
			b = append(b, ' ')
		}
		b = strconv.AppendInt(b, int64(n), 10)
	}
	b = append(b, '\n')
	w.buf = b
	_, _ = w.w.Write(b)
}
