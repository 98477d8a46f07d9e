// Package shader resolves shader modules into the per-stage information
// the pipeline compiler consumes: input and output slot counts and
// special-value usage flags.
//
// Modules are created from SPIR-V binaries, from WGSL source (compiled
// through gogpu/naga), or directly from pre-resolved stage information.
package shader

import (
	"errors"
	"fmt"

	"github.com/gogpu/naga"
)

// Shader errors.
var (
	// ErrInvalidSPIRV is returned for binaries that are not little-endian
	// SPIR-V modules.
	ErrInvalidSPIRV = errors.New("shader: invalid SPIR-V module")
)

// UsageFlags records which special vertex-fetch values a shader consumes.
type UsageFlags uint32

const (
	// UsesVertexIndex is set when the shader reads the vertex index.
	UsesVertexIndex UsageFlags = 1 << iota

	// UsesInstanceIndex is set when the shader reads the instance index.
	UsesInstanceIndex
)

// StageInfo is the resolved interface of one shader stage.
type StageInfo struct {
	// Inputs is the number of input attribute slots, each one
	// 4-component vector wide. Built-in inputs are not counted.
	Inputs int

	// Outputs is the number of output slots. Built-in outputs are not
	// counted.
	Outputs int

	// Uses flags the special values the stage consumes.
	Uses UsageFlags
}

// Module is a resolved shader stage ready to be attached to a pipeline.
type Module struct {
	info StageInfo
}

// New creates a module from pre-resolved stage information. Useful when
// reflection has already been performed elsewhere.
func New(info StageInfo) *Module {
	return &Module{info: info}
}

// Info returns the module's resolved stage information.
func (m *Module) Info() StageInfo { return m.info }

// FromSPIRV reflects a SPIR-V binary into a module.
func FromSPIRV(code []byte) (*Module, error) {
	info, err := reflect(code)
	if err != nil {
		return nil, err
	}
	return &Module{info: info}, nil
}

// CompileWGSL compiles WGSL source to SPIR-V and reflects the result.
func CompileWGSL(source string) (*Module, error) {
	code, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("shader: compiling wgsl: %w", err)
	}
	return FromSPIRV(code)
}
