// Copyright (c) 2026, The Wind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides a leveled logging front-end over [log/slog]
// with colored terminal output. The core logs recovered translation
// faults (stale touch ids, events for destroyed windows) at Debug so
// that backend development can surface them without aborting the loop.
package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// UserLevel is the current user-visible logging level; messages below
// it are discarded. The zero default depends on build tags: Info
// normally, Debug with -tags debug, Warn with -tags release.
var UserLevel = defaultUserLevel

func init() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// Handler is a [slog.Handler] printing compact, colored, single-line
// records gated on [UserLevel].
type Handler struct {
	mu     *sync.Mutex
	w      io.Writer
	out    *termenv.Output
	attrs  []slog.Attr
	groups []string
}

// NewHandler returns a new [Handler] writing to the given writer.
func NewHandler(w io.Writer) *Handler {
	return &Handler{
		mu:  &sync.Mutex{},
		w:   w,
		out: termenv.NewOutput(w),
	}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= UserLevel
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(h.levelString(r.Level))
	b.WriteByte(' ')
	b.WriteString(r.Message)
	prefix := strings.Join(h.groups, ".")
	for _, a := range h.attrs {
		h.attr(&b, prefix, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.attr(&b, prefix, a)
		return true
	})
	b.WriteByte('\n')
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *Handler) attr(b *strings.Builder, prefix string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if prefix != "" {
		key = prefix + "." + key
	}
	fmt.Fprintf(b, " %s=%v", h.out.String(key).Faint(), a.Value)
}

func (h *Handler) levelString(level slog.Level) string {
	s := h.out.String(level.String())
	switch {
	case level >= slog.LevelError:
		s = s.Foreground(termenv.ANSIRed).Bold()
	case level >= slog.LevelWarn:
		s = s.Foreground(termenv.ANSIYellow)
	case level >= slog.LevelInfo:
		s = s.Foreground(termenv.ANSIBlue)
	default:
		s = s.Faint()
	}
	return s.String()
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	nh := *h
	nh.groups = append(append([]string{}, h.groups...), name)
	return &nh
}

// Debug logs the given message at the debug level.
func Debug(msg string, args ...any) {
	slog.Debug(msg, args...)
}

// Info logs the given message at the info level.
func Info(msg string, args ...any) {
	slog.Info(msg, args...)
}

// Warn logs the given message at the warn level.
func Warn(msg string, args ...any) {
	slog.Warn(msg, args...)
}

// Error logs the given message at the error level.
func Error(msg string, args ...any) {
	slog.Error(msg, args...)
}
