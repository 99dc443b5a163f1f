// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_NotNil(t *testing.T) {
	require.NotNil(t, NewLogger("test"))
}

func TestNewLogger_RoleAndTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "test-role")

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "test-role", entry["role"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		name  string
		level []string
		want  zerolog.Level
	}{
		{name: "default is debug", level: nil, want: zerolog.DebugLevel},
		{name: "empty is debug", level: []string{""}, want: zerolog.DebugLevel},
		{name: "info", level: []string{"info"}, want: zerolog.InfoLevel},
		{name: "upper case warn", level: []string{"WARN"}, want: zerolog.WarnLevel},
		{name: "unknown falls back to debug", level: []string{"chatty"}, want: zerolog.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			NewLogger("lvl", tt.level...)
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}

	zerolog.SetGlobalLevel(zerolog.DebugLevel)
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	assert.NotPanics(t, func() { l.Info().Msg("discarded") })
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "parent")

	child := parent.GetChildLogger()
	child.Info().Msg("from child")

	assert.Equal(t, "parent", decodeEntry(t, &buf)["role"])
}

func TestWithTraceID_AddsField(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "svc").WithTraceID("abc-123")

	l.Info().Msg("traced")

	assert.Equal(t, "abc-123", decodeEntry(t, &buf)[TraceIDField])
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "ctx-role")
	ctx := l.WithContext(context.Background())

	FromContext(ctx).Info().Msg("via ctx")

	assert.Equal(t, "ctx-role", decodeEntry(t, &buf)["role"])
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "req-role")
	req := httptest.NewRequest("GET", "/", nil)
	req = req.WithContext(l.WithContext(req.Context()))

	FromRequest(req).Info().Msg("via request")

	assert.Equal(t, "req-role", decodeEntry(t, &buf)["role"])
}
