package bfvm

import (
	"errors"
	"testing"
)

func TestImageRoundTrip(t *testing.T) {
	program, err := Load(helloWorld)
	if err != nil {
		t.Fatal(err)
	}
	data, err := MarshalProgram(program)
	if err != nil {
		t.Fatal(err)
	}

	// canonical encoding
	again, err := MarshalProgram(program)
	if err != nil {
		t.Fatal(err)
	}
	if string(again) != string(data) {
		t.Fatal("encoding not stable")
	}

	decoded, err := UnmarshalProgram(data)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.String() != program.String() {
		t.Fatalf("got %q", decoded.String())
	}
	result := Execute(decoded, nil)
	if string(result.Output) != "Hello World!\n" {
		t.Fatalf("got %q", result.Output)
	}
}

func TestImageWithoutLoops(t *testing.T) {
	program, err := Load("++.")
	if err != nil {
		t.Fatal(err)
	}
	data, err := MarshalProgram(program)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := UnmarshalProgram(data)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Jumps.Forward == nil || decoded.Jumps.Reverse == nil {
		t.Fatal("nil jump table")
	}
}

func marshalImage(t *testing.T, img image) []byte {
	data, err := cborEncMode.Marshal(img)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestImageRejected(t *testing.T) {
	for name, c := range map[string]struct {
		data  func(t *testing.T) []byte
		cause error
	}{
		"garbage": {
			data: func(t *testing.T) []byte {
				return []byte("not an image")
			},
		},
		"version": {
			data: func(t *testing.T) []byte {
				return marshalImage(t, image{
					Version: ImageVersion + 1,
					Code:    "+",
				})
			},
		},
		"symbol": {
			data: func(t *testing.T) []byte {
				return marshalImage(t, image{
					Version: ImageVersion,
					Code:    "+x",
				})
			},
		},
		"tampered jump": {
			data: func(t *testing.T) []byte {
				return marshalImage(t, image{
					Version: ImageVersion,
					Code:    "[[]]",
					Forward: map[int]int{0: 2, 1: 3},
					Reverse: map[int]int{2: 0, 3: 1},
				})
			},
			cause: ErrBadJumpTable,
		},
		"missing jump": {
			data: func(t *testing.T) []byte {
				return marshalImage(t, image{
					Version: ImageVersion,
					Code:    "+[-]",
				})
			},
			cause: ErrBadJumpTable,
		},
		"unmatched": {
			data: func(t *testing.T) []byte {
				return marshalImage(t, image{
					Version: ImageVersion,
					Code:    "]",
				})
			},
			cause: ErrUnmatchedClose,
		},
	} {
		t.Run(name, func(t *testing.T) {
			program, err := UnmarshalProgram(c.data(t))
			if program != nil {
				t.Fatal("should not decode")
			}
			if !errors.Is(err, ErrBadImage) {
				t.Fatalf("got %v", err)
			}
			if c.cause != nil && !errors.Is(err, c.cause) {
				t.Fatalf("got %v", err)
			}
		})
	}
}
