// Package logger provides the console slog handler shared by both apps.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

const (
	Reset  = "\033[0m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
	Gray   = "\033[90m"
)

const DefaultTimeFormat = "2006-01-02 15:04:05"

var levelStyles = map[slog.Level]struct {
	color string
	label string
}{
	slog.LevelDebug: {Gray, "DEBUG"},
	slog.LevelInfo:  {Green, "INFO "},
	slog.LevelWarn:  {Yellow, "WARN "},
	slog.LevelError: {Red, "ERROR"},
}

// PrettyHandler writes one coloured line per record: tag, time, level, message, attrs
type PrettyHandler struct {
	out        io.Writer
	level      slog.Leveler
	mu         *sync.Mutex
	tag        string
	timeFormat string
	color      bool
	attrs      []slog.Attr
	group      string
}

// NewPrettyHandler creates a handler. Colours are enabled only when out is a terminal.
func NewPrettyHandler(out io.Writer, level slog.Leveler, tag string) *PrettyHandler {
	return &PrettyHandler{
		out:        out,
		level:      level,
		mu:         &sync.Mutex{},
		tag:        tag,
		timeFormat: DefaultTimeFormat,
		color:      isTerminal(out),
	}
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (h *PrettyHandler) paint(color, s string) string {
	if !h.color {
		return s
	}
	return color + s + Reset
}

func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	style, ok := levelStyles[r.Level]
	if !ok {
		style = levelStyles[slog.LevelInfo]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s %s %s %s",
		h.paint(Cyan, "["+h.tag+"]"),
		r.Time.Format(h.timeFormat),
		h.paint(Gray, "|"),
		h.paint(style.color, style.label),
		h.paint(Gray, "|"),
		r.Message,
	)

	write := func(a slog.Attr) {
		fmt.Fprintf(&b, " %s=%v", h.paint(Cyan, a.Key), a.Value.Any())
	}
	for _, a := range h.attrs {
		write(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		write(h.qualify(a))
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, b.String())
	return err
}

// qualify prefixes the key with the open group
func (h *PrettyHandler) qualify(a slog.Attr) slog.Attr {
	if h.group != "" {
		a.Key = h.group + "." + a.Key
	}
	return a
}

func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append([]slog.Attr{}, h.attrs...)
	for _, a := range attrs {
		clone.attrs = append(clone.attrs, h.qualify(a))
	}
	return &clone
}

func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	clone := *h
	if clone.group != "" {
		name = clone.group + "." + name
	}
	clone.group = name
	return &clone
}

// New returns a logger writing to stdout and installs it as the slog default
func New(tag string, level slog.Level) *slog.Logger {
	log := slog.New(NewPrettyHandler(os.Stdout, level, tag))
	slog.SetDefault(log)
	return log
}

// Since appends a rounded duration attribute, for timing blocking calls
func Since(start time.Time) slog.Attr {
	return slog.Duration("duration", time.Since(start).Round(time.Millisecond))
}
