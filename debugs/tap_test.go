package debugs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/quirl/modes"
	"go.starlark.net/starlark"
)

func TestTap(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		tap Tap,
	) {
		tap(t.Context(), "test", map[string]any{
			"foo": 42,
		})
	})
}

func TestInspect(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		inspect Inspect,
	) {
		globals := map[string]any{
			"output": []byte("hi"),
			"steps":  3,
		}

		value, err := inspect(t.Context(), "len(output) + steps", globals)
		if err != nil {
			t.Fatal(err)
		}
		if eq, _ := starlark.Equal(value, starlark.MakeInt(5)); !eq {
			t.Fatalf("got %v", value)
		}

		if _, err := inspect(t.Context(), "missing", globals); err == nil {
			t.Fatal("should error")
		}
	})
}
