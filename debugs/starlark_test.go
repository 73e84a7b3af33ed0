package debugs

import (
	"errors"
	"testing"

	"go.starlark.net/starlark"
)

type testStatus int

func (s testStatus) String() string {
	return "fine"
}

func TestToStarlarkValue(t *testing.T) {
	type testStruct struct {
		Exported   string
		unexported int
	}

	ptrStruct := &testStruct{
		Exported:   "hello",
		unexported: 42,
	}

	helloDict := func() starlark.Value {
		d := starlark.NewDict(1)
		d.SetKey(starlark.String("Exported"), starlark.String("hello"))
		return d
	}

	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"bytes", []byte("abc"), starlark.Bytes("abc")},
		{"string", "hello", starlark.String("hello")},
		{"error", errors.New("boom"), starlark.String("boom")},
		{"stringer", testStatus(1), starlark.String("fine")},
		{"int", int(42), starlark.MakeInt(42)},
		{"int8", int8(-42), starlark.MakeInt(-42)},
		{"uint8", uint8(42), starlark.MakeInt(42)},
		{"uint64", uint64(42), starlark.MakeUint64(42)},
		{"float64", float64(3.14), starlark.Float(3.14)},
		{"[]any", []any{1, "a", true}, starlark.NewList([]starlark.Value{starlark.MakeInt(1), starlark.String("a"), starlark.True})},
		{"[]int", []int{1, 2, 3}, starlark.NewList([]starlark.Value{starlark.MakeInt(1), starlark.MakeInt(2), starlark.MakeInt(3)})},
		{"map[string]any", map[string]any{"a": 1}, func() starlark.Value {
			d := starlark.NewDict(1)
			d.SetKey(starlark.String("a"), starlark.MakeInt(1))
			return d
		}()},
		{"struct", testStruct{Exported: "hello", unexported: 42}, helloDict()},
		{"pointer to struct", ptrStruct, helloDict()},
		{"pointer to pointer to struct", &ptrStruct, helloDict()},
		{"nil pointer", (*testStruct)(nil), starlark.None},
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
