package hwenc

import "github.com/gogpu/genhw/internal/cmdbuf"

// The tessellation fixed-function stages are disabled at pipeline build
// time; the commands below program them to their inactive state. 3DSTATE_GS
// is intentionally absent: it depends on draw-time state and is emitted by
// the command submission layer instead.

// HullStageGen7 emits a zeroed 3DSTATE_HS.
func HullStageGen7(b *cmdbuf.Buffer) {
	const cmdLen = 7
	dw := b.Reserve(cmdLen)
	dw[0] = cmd3DStateHS | (cmdLen - 2)
	for i := 1; i < cmdLen; i++ {
		dw[i] = 0
	}
}

// TessEngineGen7 emits a zeroed 3DSTATE_TE.
func TessEngineGen7(b *cmdbuf.Buffer) {
	const cmdLen = 4
	dw := b.Reserve(cmdLen)
	dw[0] = cmd3DStateTE | (cmdLen - 2)
	for i := 1; i < cmdLen; i++ {
		dw[i] = 0
	}
}

// DomainStageGen7 emits a zeroed 3DSTATE_DS.
func DomainStageGen7(b *cmdbuf.Buffer) {
	const cmdLen = 6
	dw := b.Reserve(cmdLen)
	dw[0] = cmd3DStateDS | (cmdLen - 2)
	for i := 1; i < cmdLen; i++ {
		dw[i] = 0
	}
}
