package bfvm

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

const ImageVersion uint16 = 1

var ErrBadImage = errors.New("bad program image")

// image is the on-disk form of a loaded Program.
type image struct {
	Version uint16      `cbor:"1,keyasint"`
	Code    string      `cbor:"2,keyasint"`
	Forward map[int]int `cbor:"3,keyasint,omitempty"`
	Reverse map[int]int `cbor:"4,keyasint,omitempty"`
}

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("bfvm: create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

func MarshalProgram(p *Program) ([]byte, error) {
	return cborEncMode.Marshal(image{
		Version: ImageVersion,
		Code:    p.String(),
		Forward: p.Jumps.Forward,
		Reverse: p.Jumps.Reverse,
	})
}

// UnmarshalProgram decodes an image and validates its jump table against the
// decoded code, so a damaged image is rejected before it can run.
func UnmarshalProgram(data []byte) (*Program, error) {
	var img image
	if err := cbor.Unmarshal(data, &img); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadImage, err)
	}
	if img.Version != ImageVersion {
		return nil, fmt.Errorf("%w: version %d, want %d", ErrBadImage, img.Version, ImageVersion)
	}

	program := &Program{
		Code: make([]OpCode, 0, len(img.Code)),
		Jumps: JumpTable{
			Forward: img.Forward,
			Reverse: img.Reverse,
		},
	}
	for i, r := range []rune(img.Code) {
		op, ok := OpCodeOf(r)
		if !ok {
			return nil, fmt.Errorf("%w: symbol %q at %d", ErrBadImage, r, i)
		}
		program.Code = append(program.Code, op)
	}
	if program.Jumps.Forward == nil {
		program.Jumps.Forward = make(map[int]int)
	}
	if program.Jumps.Reverse == nil {
		program.Jumps.Reverse = make(map[int]int)
	}

	if err := program.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadImage, err)
	}
	return program, nil
}
