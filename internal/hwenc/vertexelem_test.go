package hwenc

import (
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/genhw/internal/cmdbuf"
	"github.com/gogpu/genhw/shader"
)

func TestVertexElementsNothingToConfigure(t *testing.T) {
	var b cmdbuf.Buffer
	if err := VertexElements(&b, nil, 0); err != nil {
		t.Fatalf("VertexElements() error: %v", err)
	}
	if b.Len() != 0 {
		t.Errorf("emitted %d words, want none", b.Len())
	}
}

func TestVertexElementsComponentDefaults(t *testing.T) {
	tests := []struct {
		name    string
		format  gputypes.VertexFormat
		wantDW0 uint32
		wantDW1 uint32
	}{
		{
			// Three source channels, float: component 3 defaults to the
			// floating-point constant one.
			name:    "float32x3",
			format:  gputypes.VertexFormatFloat32x3,
			wantDW0: veDW0Valid | 0x040<<16,
			wantDW1: 1<<28 | 1<<24 | 1<<20 | 3<<16,
		},
		{
			// One source channel: components 1-2 default to zero,
			// component 3 to one.
			name:    "float32",
			format:  gputypes.VertexFormatFloat32,
			wantDW0: veDW0Valid | 0x0d8<<16,
			wantDW1: 1<<28 | 2<<24 | 2<<20 | 3<<16,
		},
		{
			// Integer format: the constant one uses the integer encoding.
			name:    "uint32x2",
			format:  gputypes.VertexFormatUint32x2,
			wantDW0: veDW0Valid | 0x087<<16,
			wantDW1: 1<<28 | 1<<24 | 2<<20 | 4<<16,
		},
		{
			name:    "sint32x4",
			format:  gputypes.VertexFormatSint32x4,
			wantDW0: veDW0Valid | 0x001<<16,
			wantDW1: 1<<28 | 1<<24 | 1<<20 | 1<<16,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b cmdbuf.Buffer
			attrs := []VertexAttr{{Binding: 0, Format: tt.format, Offset: 0}}
			if err := VertexElements(&b, attrs, 0); err != nil {
				t.Fatalf("VertexElements() error: %v", err)
			}
			got := b.Words()
			if len(got) != 3 {
				t.Fatalf("emitted %d words, want 3", len(got))
			}
			if got[0] != cmd3DStateVertexElements|1 {
				t.Errorf("dw[0] = %#08x, want %#08x", got[0], uint32(cmd3DStateVertexElements|1))
			}
			if got[1] != tt.wantDW0 {
				t.Errorf("dw[1] = %#08x, want %#08x", got[1], tt.wantDW0)
			}
			if got[2] != tt.wantDW1 {
				t.Errorf("dw[2] = %#08x, want %#08x", got[2], tt.wantDW1)
			}
		})
	}
}

func TestVertexElementsBindingAndOffset(t *testing.T) {
	var b cmdbuf.Buffer
	attrs := []VertexAttr{{Binding: 2, Format: gputypes.VertexFormatFloat32x4, Offset: 2047}}
	if err := VertexElements(&b, attrs, 0); err != nil {
		t.Fatalf("VertexElements() error: %v", err)
	}
	want := uint32(2<<veDW0VBIndexShift) | veDW0Valid | 0x000<<16 | 2047
	if got := b.Words()[1]; got != want {
		t.Errorf("dw[1] = %#08x, want %#08x", got, want)
	}
}

func TestVertexElementsSyntheticElement(t *testing.T) {
	tests := []struct {
		name    string
		uses    shader.UsageFlags
		wantDW1 uint32
	}{
		{"vertex index", shader.UsesVertexIndex, uint32(vfCompStoreVID) << veDW1Comp0Shift},
		{"instance index", shader.UsesInstanceIndex, uint32(vfCompStore0)<<veDW1Comp0Shift | uint32(vfCompStoreIID)<<veDW1Comp1Shift},
		{"both", shader.UsesVertexIndex | shader.UsesInstanceIndex, uint32(vfCompStoreVID)<<veDW1Comp0Shift | uint32(vfCompStoreIID)<<veDW1Comp1Shift},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b cmdbuf.Buffer
			attrs := []VertexAttr{{Binding: 0, Format: gputypes.VertexFormatFloat32x2, Offset: 0}}
			if err := VertexElements(&b, attrs, tt.uses); err != nil {
				t.Fatalf("VertexElements() error: %v", err)
			}
			got := b.Words()
			// Header, one declared element, one synthetic element.
			if len(got) != 5 {
				t.Fatalf("emitted %d words, want 5", len(got))
			}
			if got[3] != veDW0Valid {
				t.Errorf("synthetic dw0 = %#08x, want %#08x", got[3], uint32(veDW0Valid))
			}
			if got[4] != tt.wantDW1 {
				t.Errorf("synthetic dw1 = %#08x, want %#08x", got[4], tt.wantDW1)
			}
		})
	}
}

func TestVertexElementsSyntheticOnly(t *testing.T) {
	// No declared attributes but the shader consumes the vertex index:
	// the command still must provide the backing element.
	var b cmdbuf.Buffer
	if err := VertexElements(&b, nil, shader.UsesVertexIndex); err != nil {
		t.Fatalf("VertexElements() error: %v", err)
	}
	if b.Len() != 3 {
		t.Fatalf("emitted %d words, want 3", b.Len())
	}
}

func TestVertexElementsBadAttribute(t *testing.T) {
	tests := []struct {
		name string
		attr VertexAttr
	}{
		{"offset past limit", VertexAttr{Format: gputypes.VertexFormatFloat32, Offset: 2048}},
		{"unsupported format", VertexAttr{Format: gputypes.VertexFormat(0xffff), Offset: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b cmdbuf.Buffer
			err := VertexElements(&b, []VertexAttr{tt.attr}, 0)
			if err == nil {
				t.Fatal("VertexElements() succeeded, want error")
			}
			if b.Len() != 0 {
				t.Errorf("emitted %d words on error, want none", b.Len())
			}
		})
	}
}
