package shader

import (
	"encoding/binary"
	"errors"
	"testing"
)

// instr assembles one SPIR-V instruction: word count in the high half of
// the first word, opcode in the low half.
func instr(op uint32, operands ...uint32) []uint32 {
	return append([]uint32{op | uint32(len(operands)+1)<<16}, operands...)
}

func assemble(instrs ...[]uint32) []byte {
	words := []uint32{spirvMagic, 0x00010300, 0, 100, 0}
	for _, in := range instrs {
		words = append(words, in...)
	}
	buf := make([]byte, len(words)*4)
	for i, w := range words {
		binary.LittleEndian.PutUint32(buf[i*4:], w)
	}
	return buf
}

const (
	opEntryPoint     = 15
	opTypePointer    = 32
	opVariable       = 59
	opDecorate       = 71
	opMemberDecorate = 72

	storageInput  = 1
	storageOutput = 3

	decorationBuiltIn = 11
	decorationBlock   = 2
)

func TestReflect(t *testing.T) {
	tests := []struct {
		name string
		code []byte
		want StageInfo
	}{
		{
			name: "plain interface variables",
			code: assemble(
				instr(opVariable, 7, 20, storageInput),
				instr(opVariable, 7, 21, storageInput),
				instr(opVariable, 8, 30, storageOutput),
			),
			want: StageInfo{Inputs: 2, Outputs: 1},
		},
		{
			name: "vertex index builtin",
			code: assemble(
				instr(opDecorate, 10, decorationBuiltIn, builtInVertexIndex),
				instr(opVariable, 7, 10, storageInput),
				instr(opVariable, 7, 20, storageInput),
			),
			want: StageInfo{Inputs: 1, Uses: UsesVertexIndex},
		},
		{
			// Modules produced by older front ends decorate with the
			// pre-1.3 names.
			name: "legacy vertex and instance id",
			code: assemble(
				instr(opDecorate, 10, decorationBuiltIn, builtInVertexID),
				instr(opDecorate, 11, decorationBuiltIn, builtInInstanceID),
				instr(opVariable, 7, 10, storageInput),
				instr(opVariable, 7, 11, storageInput),
			),
			want: StageInfo{Uses: UsesVertexIndex | UsesInstanceIndex},
		},
		{
			name: "instance index builtin",
			code: assemble(
				instr(opDecorate, 10, decorationBuiltIn, builtInInstanceIndex),
				instr(opVariable, 7, 10, storageInput),
			),
			want: StageInfo{Uses: UsesInstanceIndex},
		},
		{
			// A gl_PerVertex style output block does not occupy slots.
			name: "builtin block output",
			code: assemble(
				instr(opMemberDecorate, 40, 0, decorationBuiltIn, 0),
				instr(opTypePointer, 41, storageOutput, 40),
				instr(opVariable, 41, 42, storageOutput),
				instr(opVariable, 8, 30, storageOutput),
			),
			want: StageInfo{Outputs: 1},
		},
		{
			name: "builtin output variable",
			code: assemble(
				instr(opDecorate, 30, decorationBuiltIn, 0),
				instr(opVariable, 8, 30, storageOutput),
			),
			want: StageInfo{},
		},
		{
			// Uniform and function storage classes are not stage interface
			// slots.
			name: "non-interface storage ignored",
			code: assemble(
				instr(opVariable, 7, 20, 2),
				instr(opVariable, 7, 21, 7),
			),
			want: StageInfo{},
		},
		{
			name: "empty module",
			code: assemble(),
			want: StageInfo{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reflect(tt.code)
			if err != nil {
				t.Fatalf("reflect() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("reflect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestReflectInvalid(t *testing.T) {
	truncated := assemble(instr(opVariable, 7, 20, storageInput))
	// Claim a word count that runs past the end of the module.
	binary.LittleEndian.PutUint32(truncated[20:], opVariable|200<<16)

	badMagic := assemble()
	badMagic[0] = 0xff

	tests := []struct {
		name string
		code []byte
	}{
		{"nil", nil},
		{"shorter than header", make([]byte, 16)},
		{"unaligned length", make([]byte, 21)},
		{"bad magic", badMagic},
		{"truncated instruction", truncated},
		{"zero word count", assemble([]uint32{opVariable})},
		{"malformed variable", assemble(instr(opVariable, 7))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := reflect(tt.code); !errors.Is(err, ErrInvalidSPIRV) {
				t.Errorf("reflect() error = %v, want ErrInvalidSPIRV", err)
			}
		})
	}
}

func TestFromSPIRV(t *testing.T) {
	code := assemble(
		instr(opVariable, 7, 20, storageInput),
		instr(opVariable, 8, 30, storageOutput),
	)
	m, err := FromSPIRV(code)
	if err != nil {
		t.Fatalf("FromSPIRV() error: %v", err)
	}
	want := StageInfo{Inputs: 1, Outputs: 1}
	if got := m.Info(); got != want {
		t.Errorf("Info() = %+v, want %+v", got, want)
	}
}

func TestNew(t *testing.T) {
	info := StageInfo{Inputs: 3, Outputs: 2, Uses: UsesInstanceIndex}
	if got := New(info).Info(); got != info {
		t.Errorf("Info() = %+v, want %+v", got, info)
	}
}
