package notify

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecorderDrain(t *testing.T) {
	r := NewRecorder()
	require.Empty(t, r.Drain())

	r.Notify(Success("Client created", "Acme has been added successfully."))
	r.Notify(Error("Not found", "missing"))

	all := r.All()
	require.Len(t, all, 2)
	require.Equal(t, SeveritySuccess, all[0].Severity)

	drained := r.Drain()
	require.Equal(t, all, drained)
	require.Empty(t, r.All())
}

func TestLogSinkLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	sink := NewLogSink(logger)

	sink.Notify(Info("hello", "ignored at warn"))
	require.Empty(t, buf.String())

	sink.Notify(Error("Login failed", "Invalid email or password"))
	require.Contains(t, buf.String(), "level=ERROR")
	require.Contains(t, buf.String(), "Login failed")
}

func TestFanoutSkipsNil(t *testing.T) {
	a, b := NewRecorder(), NewRecorder()
	var seen []Notification
	f := Fanout{a, nil, b, SinkFunc(func(n Notification) { seen = append(seen, n) })}

	f.Notify(Info("x", "y"))
	require.Len(t, a.All(), 1)
	require.Len(t, b.All(), 1)
	require.Len(t, seen, 1)
}
