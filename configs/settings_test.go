package configs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/taisp/logs"
	"github.com/reusee/taisp/modes"
)

func TestSettings(t *testing.T) {
	dscope.New(
		new(Module),
		new(logs.Module),
		modes.ForTest(t),
	).Fork(
		func() Loader {
			return NewLoader(testFiles, schema)
		},
	).Call(func(
		prompt Prompt,
		prefix ResultPrefix,
		history HistoryFile,
	) {
		if prompt != "taisp> " {
			t.Fatalf("got %q", prompt)
		}
		if prefix != "=> " {
			t.Fatalf("got %q", prefix)
		}
		if history != "/tmp/taisp_history" {
			t.Fatalf("got %q", history)
		}
	})
}

func TestSettingsDefaults(t *testing.T) {
	dscope.New(
		new(Module),
		new(logs.Module),
		modes.ForTest(t),
	).Fork(
		func() Loader {
			return NewLoader(nil, schema)
		},
	).Call(func(
		prompt Prompt,
		prefix ResultPrefix,
	) {
		if prompt != "> " {
			t.Fatalf("got %q", prompt)
		}
		if prefix != "==> " {
			t.Fatalf("got %q", prefix)
		}
	})
}
