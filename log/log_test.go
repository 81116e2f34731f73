package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

var _ Logger = logrus.New()

func TestDiscard(t *testing.T) {
	require.NotPanics(t, func() {
		Discard.Debug("x")
		Discard.Debugf("%d", 1)
		Discard.Debugln("x")
		Discard.Info("x")
		Discard.Infof("%d", 1)
		Discard.Infoln("x")
		Discard.Warn("x")
		Discard.Warnf("%d", 1)
		Discard.Warnln("x")
		Discard.Error("x")
		Discard.Errorf("%d", 1)
		Discard.Errorln("x")
	})
}

func TestLogrusLogger(t *testing.T) {
	buf := new(bytes.Buffer)

	l := logrus.New()
	l.SetOutput(buf)
	l.SetLevel(logrus.WarnLevel)

	var logger Logger = l
	logger.Debugf("hidden %d", 1)
	logger.Warnf("shown %d", 2)

	require.False(t, strings.Contains(buf.String(), "hidden"))
	require.True(t, strings.Contains(buf.String(), "shown 2"))
}
