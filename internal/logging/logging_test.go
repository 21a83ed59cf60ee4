package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	var buf = &bytes.Buffer{}
	var logger, err = New(buf, "warn", false)
	if err != nil {
		t.Fatal(err)
	}
	logger.Info().Msg("hidden")
	logger.Warn().Str("game", "pente").Msg("shown")
	var s = buf.String()
	if strings.Contains(s, "hidden") || !strings.Contains(s, `"game":"pente"`) {
		t.Error("unexpected log output", s)
	}
	if _, err = New(buf, "loud", false); err == nil {
		t.Error("expected level error")
	}
}
