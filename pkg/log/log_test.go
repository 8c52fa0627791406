package log

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	t.Cleanup(SetupTestLogger)

	require.NoError(t, Setup("warn", "json"))
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)

	require.NoError(t, Setup("debug", "text"))
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	assert.Error(t, Setup("verbose", "text"))
	assert.Error(t, Setup("info", "xml"))
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestWithFields_DevelopmentFilter(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	l := &logger{entry: logrus.NewEntry(logrus.StandardLogger())}

	filtered := l.WithFields(Fields{"report": "total-sales", "bytes": 2048}).(*logger)
	assert.Contains(t, filtered.entry.Data, "report")
	assert.NotContains(t, filtered.entry.Data, "bytes")

	t.Setenv("APP_ENV", "production")
	full := l.WithFields(Fields{"report": "total-sales", "bytes": 2048}).(*logger)
	assert.Contains(t, full.entry.Data, "bytes")
}
