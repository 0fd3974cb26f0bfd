package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithContext(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	ctx := context.WithValue(context.Background(), ActorKey, "admin@example.com")
	ctx = context.WithValue(ctx, RequestIDKey, "req-1")

	WithContext(ctx).WithField("collection", "inductees").Info("created")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "admin@example.com", entry.Data["user"])
	assert.Equal(t, "req-1", entry.Data[RequestIDKey])
	assert.Equal(t, "inductees", entry.Data["collection"])
}

func TestWithContextAnonymous(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	WithContext(context.Background()).WithError(errors.New("boom")).Errorf("failed %d", 1)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "anonymous", entry.Data["user"])
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "failed 1", entry.Message)
}

func TestSetup(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	Setup("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	Setup("warning")
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())

	Setup("nonsense")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
