package logging_test

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/fstarlabs/agent-tools/internal/logging"
)

func TestNew_Levels(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"ERROR", zerolog.ErrorLevel},
		{" info ", zerolog.InfoLevel},
		{"", zerolog.WarnLevel},
		{"bogus", zerolog.WarnLevel},
	}
	for _, tc := range cases {
		if got := logging.New(tc.in).GetLevel(); got != tc.want {
			t.Errorf("New(%q): got level %v want %v", tc.in, got, tc.want)
		}
	}
}
