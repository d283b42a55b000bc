package debugs

import (
	"errors"
	"testing"

	"github.com/reusee/taisp/lisp"
	"go.starlark.net/starlark"
)

func dict(pairs ...any) *starlark.Dict {
	d := starlark.NewDict(len(pairs) / 2)
	for i := 0; i < len(pairs); i += 2 {
		d.SetKey(starlark.String(pairs[i].(string)), pairs[i+1].(starlark.Value))
	}
	return d
}

func TestToStarlarkValue(t *testing.T) {
	nodes, err := lisp.Parse("test", `(add 1 "s")`)
	if err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"string", "hello", starlark.String("hello")},
		{"int", 42, starlark.MakeInt(42)},
		{"int64", int64(-3), starlark.MakeInt64(-3)},
		{"uint8", uint8(7), starlark.MakeUint(7)},
		{"float64", 1.5, starlark.Float(1.5)},
		{"[]any", []any{1, "a"}, starlark.NewList([]starlark.Value{starlark.MakeInt(1), starlark.String("a")})},
		{"number value", lisp.Number(5), starlark.MakeInt(5)},
		{"symbol value", lisp.Symbol("x"), starlark.String("x")},
		{"error", errors.New("boom"), starlark.String("boom")},
		{"nil node", (*lisp.Node)(nil), starlark.None},
		{"leaf without position", lisp.NumberNode(9), dict(
			"kind", starlark.String("number"),
			"value", starlark.MakeInt(9),
		)},
		{"tree", nodes[0], dict(
			"kind", starlark.String("list"),
			"children", starlark.NewList([]starlark.Value{
				dict(
					"kind", starlark.String("symbol"),
					"value", starlark.String("add"),
					"line", starlark.MakeInt(1),
					"column", starlark.MakeInt(2),
				),
				dict(
					"kind", starlark.String("number"),
					"value", starlark.MakeInt(1),
					"line", starlark.MakeInt(1),
					"column", starlark.MakeInt(6),
				),
				dict(
					"kind", starlark.String("string"),
					"value", starlark.String("s"),
					"line", starlark.MakeInt(1),
					"column", starlark.MakeInt(8),
				),
			}),
			"line", starlark.MakeInt(1),
			"column", starlark.MakeInt(1),
		)},
		{"struct", struct {
			Exported   string
			unexported int
		}{"a", 1}, dict("Exported", starlark.String("a"))},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := toStarlarkValue(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("toStarlarkValue(%#v) = %v, want %v", tc.input, actual, tc.expected)
			}
		})
	}

	t.Run("panic on unsupported type", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("toStarlarkValue did not panic on unsupported type")
			}
		}()
		toStarlarkValue(make(chan bool))
	})
}
