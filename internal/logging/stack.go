package logging

import (
	"runtime"
	"strconv"
	"strings"
)

const maxStackDepth = 64

// Frame describes one call site in a captured stack trace.
type Frame struct {
	Function string `json:"function"`
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column,omitempty"`
}

// String renders the frame as "function (file:line)". The column is only
// appended when known.
func (f Frame) String() string {
	var b strings.Builder
	b.WriteString(f.Function)
	b.WriteString(" (")
	b.WriteString(f.File)
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(f.Line))
	if f.Column > 0 {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(f.Column))
	}
	b.WriteByte(')')
	return b.String()
}

// StackTrace is the origin of a logging call. Structured traces keep Frames;
// text traces only carry Text. A nil *StackTrace means no trace was taken.
type StackTrace struct {
	Frames []Frame `json:"frames,omitempty"`
	Text   string  `json:"text,omitempty"`
}

// MachineReadable reports whether the trace was captured as structured frames.
func (s *StackTrace) MachineReadable() bool {
	return s != nil && s.Frames != nil
}

// String renders the trace in text form regardless of how it was captured.
func (s *StackTrace) String() string {
	if s == nil {
		return ""
	}
	if s.Frames != nil {
		return FormatFrames(s.Frames)
	}
	return s.Text
}

// FormatFrames joins frames into the text form: each frame on its own line,
// preceded by a newline.
func FormatFrames(frames []Frame) string {
	var b strings.Builder
	for _, frame := range frames {
		b.WriteByte('\n')
		b.WriteString(frame.String())
	}
	return b.String()
}

// callers is the pc source for captureStack.
var callers = runtime.Callers

// captureStack records the stack of its caller's caller. The frames for
// captureStack itself and the facade method that invoked it are dropped, so
// the first frame is the code that called the logger. When the runtime
// yields nothing an empty trace is returned.
func captureStack(machineReadable bool) *StackTrace {
	// 0 = runtime.Callers, 1 = captureStack, 2 = the facade method.
	pcs := make([]uintptr, maxStackDepth)
	n := callers(3, pcs)
	if n <= 0 {
		return &StackTrace{}
	}

	frames := make([]Frame, 0, n)
	iter := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := iter.Next()
		if frame.Function != "" || frame.File != "" {
			frames = append(frames, Frame{
				Function: frame.Function,
				File:     frame.File,
				Line:     frame.Line,
			})
		}
		if !more {
			break
		}
	}

	if machineReadable {
		return &StackTrace{Frames: frames}
	}
	return &StackTrace{Text: FormatFrames(frames)}
}
