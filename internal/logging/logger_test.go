package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		envLevel  string
		wantDebug bool
		wantInfo  bool
		wantWarn  bool
	}{
		{name: "default is info", wantInfo: true, wantWarn: true},
		{name: "env info", envLevel: "info", wantInfo: true, wantWarn: true},
		{name: "env debug", envLevel: "DEBUG", wantDebug: true, wantInfo: true, wantWarn: true},
		{name: "env error", envLevel: "error"},
		{name: "env warn", envLevel: "warning", wantWarn: true},
		{name: "unknown keeps default", envLevel: "chatty", wantInfo: true, wantWarn: true},
		{name: "debug flag wins", debug: true, envLevel: "error", wantDebug: true, wantInfo: true, wantWarn: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := newLogger(&buf, tt.debug, tt.envLevel)

			log.Debug("dbg-line")
			log.Info("info-line")
			log.Warn("warn-line")

			out := buf.String()
			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("dbg-line")), out)
			assert.Equal(t, tt.wantInfo, bytes.Contains(buf.Bytes(), []byte("info-line")), out)
			assert.Equal(t, tt.wantWarn, bytes.Contains(buf.Bytes(), []byte("warn-line")), out)
		})
	}
}

func TestNewLogger_DropsTime(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, false, "info").Info("hello", "component", "Test")

	assert.NotContains(t, buf.String(), "time=")
	assert.Contains(t, buf.String(), "component=Test")
}
