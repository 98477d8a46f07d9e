package shader

import (
	"encoding/binary"
	"fmt"

	"github.com/gogpu/naga/spirv"
)

const spirvMagic = 0x07230203

// SPIR-V BuiltIn decoration values relevant to vertex fetch.
const (
	builtInVertexID      = 5
	builtInInstanceID    = 6
	builtInVertexIndex   = 42
	builtInInstanceIndex = 43
)

// SPIR-V storage classes of stage interface variables.
const (
	storageClassInput  = 1
	storageClassOutput = 3
)

// reflect walks a SPIR-V module and counts its non-built-in Input and
// Output interface variables, one slot per variable. Built-in inputs that
// the vertex fetch stage must back with an element slot (vertex and
// instance index) are reported through UsageFlags instead.
func reflect(code []byte) (StageInfo, error) {
	if len(code) < 20 || len(code)%4 != 0 {
		return StageInfo{}, fmt.Errorf("%w: %d bytes", ErrInvalidSPIRV, len(code))
	}

	words := make([]uint32, len(code)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(code[i*4:])
	}
	if words[0] != spirvMagic {
		return StageInfo{}, fmt.Errorf("%w: bad magic %#x", ErrInvalidSPIRV, words[0])
	}

	var (
		builtinVars  = map[uint32]uint32{} // variable id -> BuiltIn value
		builtinTypes = map[uint32]bool{}   // struct type id -> has built-in members
		pointee      = map[uint32]uint32{} // pointer type id -> pointee type id
		info         StageInfo
	)

	// Decorations precede the variables they apply to, and types precede
	// their uses, so a single forward pass sees everything in order.
	for at := 5; at < len(words); {
		op := spirv.OpCode(words[at] & 0xffff)
		count := int(words[at] >> 16)
		if count == 0 || at+count > len(words) {
			return StageInfo{}, fmt.Errorf("%w: truncated instruction at word %d", ErrInvalidSPIRV, at)
		}
		ops := words[at+1 : at+count]

		switch op {
		case spirv.OpDecorate:
			if len(ops) >= 3 && spirv.Decoration(ops[1]) == spirv.DecorationBuiltIn {
				builtinVars[ops[0]] = ops[2]
			}

		case spirv.OpMemberDecorate:
			if len(ops) >= 3 && spirv.Decoration(ops[2]) == spirv.DecorationBuiltIn {
				builtinTypes[ops[0]] = true
			}

		case spirv.OpTypePointer:
			if len(ops) >= 3 {
				pointee[ops[0]] = ops[2]
			}

		case spirv.OpVariable:
			if len(ops) < 3 {
				return StageInfo{}, fmt.Errorf("%w: malformed OpVariable", ErrInvalidSPIRV)
			}
			resultType, id, storage := ops[0], ops[1], ops[2]

			// Variables backed by a built-in block (gl_PerVertex style)
			// or decorated built-in directly do not occupy attribute
			// slots.
			builtin, isBuiltinVar := builtinVars[id]
			isBuiltinBlock := builtinTypes[pointee[resultType]]

			switch storage {
			case storageClassInput:
				if isBuiltinVar {
					switch builtin {
					case builtInVertexIndex, builtInVertexID:
						info.Uses |= UsesVertexIndex
					case builtInInstanceIndex, builtInInstanceID:
						info.Uses |= UsesInstanceIndex
					}
				} else if !isBuiltinBlock {
					info.Inputs++
				}
			case storageClassOutput:
				if !isBuiltinVar && !isBuiltinBlock {
					info.Outputs++
				}
			}
		}

		at += count
	}

	return info, nil
}
