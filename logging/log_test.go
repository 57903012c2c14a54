package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFromVerbosity(t *testing.T) {
	tests := []struct {
		v    int
		want logrus.Level
	}{
		{-1, logrus.FatalLevel},
		{0, logrus.FatalLevel},
		{1, logrus.ErrorLevel},
		{2, logrus.WarnLevel},
		{3, logrus.InfoLevel},
		{4, logrus.DebugLevel},
		{5, logrus.TraceLevel},
		{9, logrus.TraceLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFromVerbosity(tt.v), "verbosity %d", tt.v)
	}
}

func TestConfigure_json(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	require.NoError(t, configure(l, Config{Verbosity: 3, Format: "json"}, &buf))

	logger{entry: logrus.NewEntry(l)}.With("module", "chaincfg").Info("selected")
	l.Debug("hidden")

	var rec map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "chaincfg", rec["module"])
	assert.Equal(t, "selected", rec["msg"])
}

func TestConfigure_badFormat(t *testing.T) {
	assert.Error(t, configure(logrus.New(), Config{Format: "xml"}, nil))
}

func TestNewLogger_fields(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf).WithFields(Fields{"network": "regtest"}).Debugf("height %d", 7)
	assert.Contains(t, buf.String(), "network=regtest")
	assert.Contains(t, buf.String(), "height 7")
}
