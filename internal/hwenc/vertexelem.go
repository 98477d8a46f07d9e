package hwenc

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/genhw/format"
	"github.com/gogpu/genhw/internal/cmdbuf"
	"github.com/gogpu/genhw/shader"
)

// VertexAttr is one declared vertex attribute.
type VertexAttr struct {
	Binding uint32
	Format  gputypes.VertexFormat
	Offset  uint32
}

// VertexElements emits one 3DSTATE_VERTEX_ELEMENTS command describing
// every declared attribute, in declaration order, as two-word
// VERTEX_ELEMENT_STATE records.
//
// Components beyond a format's channel count are defaulted: components 0-2
// store constant zero and component 3 stores constant one, using the
// integer or floating-point encoding of one depending on the format. If
// the vertex shader consumes the vertex index or instance index, one
// synthetic element is appended after the declared attributes so that the
// vertex fetch stage has a backing element slot for those values.
//
// With no attributes and no special-value usage there is nothing to
// configure and no command is emitted at all.
func VertexElements(b *cmdbuf.Buffer, attrs []VertexAttr, uses shader.UsageFlags) error {
	cmdLen := 1 + 2*len(attrs)
	if uses&(shader.UsesVertexIndex|shader.UsesInstanceIndex) != 0 {
		cmdLen += 2
	}
	if cmdLen == 1 {
		return nil
	}

	// Resolve every attribute before reserving buffer space so a bad
	// attribute emits no partial command.
	infos := make([]format.Info, len(attrs))
	for i, attr := range attrs {
		info, ok := format.Translate(attr.Format)
		if !ok {
			return fmt.Errorf("vertex attribute %d: format %v is not usable as a vertex attribute", i, attr.Format)
		}
		if attr.Offset > veDW0OffsetMax {
			return fmt.Errorf("vertex attribute %d: offset %d exceeds %d", i, attr.Offset, veDW0OffsetMax)
		}
		infos[i] = info
	}

	dw := b.Reserve(cmdLen)
	dw[0] = cmd3DStateVertexElements | uint32(cmdLen-2)
	dw = dw[1:]

	for i, attr := range attrs {
		info := infos[i]

		var comps [4]uint32
		comps[0] = vfCompStore0
		comps[1] = vfCompStore0
		comps[2] = vfCompStore0
		if info.Integer {
			comps[3] = vfCompStore1Int
		} else {
			comps[3] = vfCompStore1FP
		}
		switch info.Channels {
		case 4:
			comps[3] = vfCompStoreSrc
			fallthrough
		case 3:
			comps[2] = vfCompStoreSrc
			fallthrough
		case 2:
			comps[1] = vfCompStoreSrc
			fallthrough
		case 1:
			comps[0] = vfCompStoreSrc
		}

		dw[0] = attr.Binding<<veDW0VBIndexShift |
			veDW0Valid |
			info.Surface<<veDW0FormatShift |
			attr.Offset
		dw[1] = comps[0]<<veDW1Comp0Shift |
			comps[1]<<veDW1Comp1Shift |
			comps[2]<<veDW1Comp2Shift |
			comps[3]<<veDW1Comp3Shift
		dw = dw[2:]
	}

	if uses&(shader.UsesVertexIndex|shader.UsesInstanceIndex) != 0 {
		var comps [4]uint32
		if uses&shader.UsesVertexIndex != 0 {
			comps[0] = vfCompStoreVID
		} else {
			comps[0] = vfCompStore0
		}
		if uses&shader.UsesInstanceIndex != 0 {
			comps[1] = vfCompStoreIID
		} else {
			comps[1] = vfCompNoStore
		}
		comps[2] = vfCompNoStore
		comps[3] = vfCompNoStore

		dw[0] = veDW0Valid
		dw[1] = comps[0]<<veDW1Comp0Shift |
			comps[1]<<veDW1Comp1Shift |
			comps[2]<<veDW1Comp2Shift |
			comps[3]<<veDW1Comp3Shift
	}

	return nil
}
