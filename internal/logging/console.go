package logging

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/fatih/color"
)

// ConsoleRenderer echoes a dispatched record to the operator console.
type ConsoleRenderer interface {
	Render(id Identity, level Level, stack *StackTrace, args []any)
}

// ConsoleFunc is a leveled console sink such as (*clog.Logger).Warn.
type ConsoleFunc func(msg any, keyvals ...any)

type badge struct {
	text  string
	color color.Attribute
}

// Zero color means the badge is printed plain.
var mainBadges = map[Rank]badge{
	RankDebug:    {text: "[D]"},
	RankInfo:     {text: "[i]", color: color.FgBlue},
	RankWarning:  {text: "[w]", color: color.FgYellow},
	RankError:    {text: "[E]", color: color.FgRed},
	RankCritical: {text: "[C]", color: color.FgRed},
}

// MainConsoleRenderer prints the single-line main-process format:
//
//	12.3s [w]net: retrying 3
//
// followed by the stack trace in red when one is present.
type MainConsoleRenderer struct {
	w       io.Writer
	start   time.Time
	now     func() time.Time
	badges  map[Rank]string
	channel *color.Color
	stack   *color.Color
}

func newMainConsoleRenderer(w io.Writer, start time.Time, now func() time.Time, colorize bool) *MainConsoleRenderer {
	r := &MainConsoleRenderer{
		w:       w,
		start:   start,
		now:     now,
		badges:  make(map[Rank]string, len(mainBadges)),
		channel: styled(colorize, color.FgHiBlack),
		stack:   styled(colorize, color.FgRed),
	}
	for rank, b := range mainBadges {
		if b.color == 0 {
			r.badges[rank] = b.text
			continue
		}
		r.badges[rank] = styled(colorize, b.color).Sprint(b.text)
	}
	return r
}

// Render implements ConsoleRenderer.
func (r *MainConsoleRenderer) Render(id Identity, level Level, stack *StackTrace, args []any) {
	elapsed := math.Round(r.now().Sub(r.start).Seconds()*10) / 10
	head := fmt.Sprintf("%.1fs %s%s:", elapsed, r.badges[level.Rank], r.channel.Sprint(id.Channel))

	parts := make([]any, 0, len(args)+2)
	parts = append(parts, head)
	parts = append(parts, args...)
	if stack != nil {
		parts = append(parts, r.stack.Sprint(stack.String()))
	}
	fmt.Fprintln(r.w, parts...)
}

// WorkerConsoleRenderer routes records to the console sink matching their
// rank, prefixed with the level glyph and the channel, each styled apart.
type WorkerConsoleRenderer struct {
	sinks   map[Rank]ConsoleFunc
	glyph   *color.Color
	channel *color.Color
}

func newWorkerConsoleRenderer(sinks map[Rank]ConsoleFunc, colorize bool) *WorkerConsoleRenderer {
	defaults := DefaultWorkerSinks(os.Stderr)
	merged := make(map[Rank]ConsoleFunc, len(defaults))
	for rank, fn := range defaults {
		merged[rank] = fn
	}
	for rank, fn := range sinks {
		if fn != nil {
			merged[rank] = fn
		}
	}
	return &WorkerConsoleRenderer{
		sinks:   merged,
		glyph:   styled(colorize, color.Bold),
		channel: styled(colorize, color.FgMagenta),
	}
}

// DefaultWorkerSinks maps each rank onto a charmbracelet logger writing to w.
// CRITICAL shares the error sink.
func DefaultWorkerSinks(w io.Writer) map[Rank]ConsoleFunc {
	logger := clog.NewWithOptions(w, clog.Options{Level: clog.DebugLevel})
	return map[Rank]ConsoleFunc{
		RankDebug:    logger.Debug,
		RankInfo:     logger.Info,
		RankWarning:  logger.Warn,
		RankError:    logger.Error,
		RankCritical: logger.Error,
	}
}

// Render implements ConsoleRenderer.
func (r *WorkerConsoleRenderer) Render(id Identity, level Level, stack *StackTrace, args []any) {
	sink, ok := r.sinks[level.Rank]
	if !ok {
		return
	}
	parts := make([]string, 0, len(args)+2)
	parts = append(parts, r.glyph.Sprint(level.Glyph)+r.channel.Sprint(id.Channel))
	if stack != nil {
		parts = append(parts, stack.String())
	}
	for _, arg := range args {
		parts = append(parts, fmt.Sprint(arg))
	}
	sink(strings.Join(parts, " "))
}

func styled(colorize bool, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if colorize {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}
