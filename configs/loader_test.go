package configs

import (
	"errors"
	"fmt"
	"testing"
)

var testFiles = []string{
	"testdata/test.cue",
	"testdata/test2.cue",
}

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader(testFiles, schema)

	var str string
	err := loader.AssignFirst("prompt", &str)
	if err != nil {
		t.Fatal(err)
	}
	if str != "taisp> " {
		t.Fatalf("got %q", str)
	}

	// only in the second file
	err = loader.AssignFirst("history_file", &str)
	if err != nil {
		t.Fatal(err)
	}
	if str != "/tmp/taisp_history" {
		t.Fatalf("got %q", str)
	}

	err = loader.AssignFirst("not", &str)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderIterCueValues(t *testing.T) {
	loader := NewLoader(testFiles, schema)

	var strs []string
	for value, err := range loader.IterCueValues("prompt") {
		if err != nil {
			t.Fatal(err)
		}
		var s string
		if err := value.Decode(&s); err != nil {
			t.Fatal(err)
		}
		strs = append(strs, s)
	}
	if str := fmt.Sprintf("%q", strs); str != `["taisp> " "lisp> "]` {
		t.Fatalf("got %s", str)
	}

	strs = strs[:0]
	for str := range All[string](loader, "prompt") {
		strs = append(strs, str)
	}
	if len(strs) != 2 {
		t.Fatalf("got %q", strs)
	}
}

func TestFirst(t *testing.T) {
	loader := NewLoader(testFiles, schema)
	if str := First[string](loader, "result_prefix"); str != "=> " {
		t.Fatalf("got %v", str)
	}
	if str := First[string](loader, "missing"); str != "" {
		t.Fatalf("got %v", str)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/bad.cue",
	}, schema)
	var str string
	err := loader.AssignFirst("prompt", &str)
	if err == nil {
		t.Fatal("should error")
	}
	t.Logf("%v", err)
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/nope.cue",
	}, schema)
	var str string
	if err := loader.AssignFirst("prompt", &str); err == nil {
		t.Fatal("should error")
	}
}
