package hwenc

import (
	"testing"

	"github.com/gogpu/genhw/internal/cmdbuf"
)

func TestURBGen6(t *testing.T) {
	tests := []struct {
		name     string
		gt       int
		vs       StageIO
		gsOut    int
		gsActive bool
		wantDW   [3]uint32
	}{
		{
			// GT2: 64 KiB, vs alone gets all of it. Entry size 64 bytes is
			// one row; 512 raw entries clamp to 256.
			name:   "gt2 vertex only",
			gt:     2,
			vs:     StageIO{In: 0, Out: 4},
			wantDW: [3]uint32{0x78050001, 256, 0},
		},
		{
			// With geometry active each stage receives 32 KiB.
			name:     "gt2 with geometry",
			gt:       2,
			vs:       StageIO{In: 0, Out: 4},
			gsOut:    4,
			gsActive: true,
			wantDW:   [3]uint32{0x78050001, 256, 256 << 8},
		},
		{
			name:   "gt1 vertex only",
			gt:     1,
			vs:     StageIO{In: 0, Out: 4},
			wantDW: [3]uint32{0x78050001, 256, 0},
		},
		{
			// 18 slots = 288 bytes = 3 rows; 65536/128/3 = 170 masked to
			// 168, a multiple of 4.
			name:   "gt2 three row entries",
			gt:     2,
			vs:     StageIO{In: 18, Out: 4},
			wantDW: [3]uint32{0x78050001, 2<<16 | 168, 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b cmdbuf.Buffer
			URBGen6(&b, tt.gt, tt.vs, tt.gsOut, tt.gsActive)

			got := b.Words()
			if len(got) != 3 {
				t.Fatalf("emitted %d words, want 3", len(got))
			}
			for i, want := range tt.wantDW {
				if got[i] != want {
					t.Errorf("dw[%d] = %#08x, want %#08x", i, got[i], want)
				}
			}

			entries := got[1] & 0xffff
			if entries < 24 {
				t.Errorf("vs entry count %d below hardware minimum 24", entries)
			}
			if entries%4 != 0 {
				t.Errorf("vs entry count %d is not a multiple of 4", entries)
			}
		})
	}
}

func TestURBGen6Idempotent(t *testing.T) {
	run := func() []uint32 {
		var b cmdbuf.Buffer
		URBGen6(&b, 2, StageIO{In: 7, Out: 11}, 5, true)
		return append([]uint32(nil), b.Words()...)
	}
	first := run()
	for i := 0; i < 5; i++ {
		again := run()
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("run %d word %d = %#08x, want %#08x", i, j, again[j], first[j])
			}
		}
	}
}

func TestURBGen6OversizedEntryPanics(t *testing.T) {
	// 64 slots = 1024 bytes = 8 rows, past the legal [1, 5] range. The
	// inputs are supposed to be pre-validated, so this is a defect.
	defer func() {
		if recover() == nil {
			t.Error("URBGen6 with 8-row entries did not panic")
		}
	}()
	var b cmdbuf.Buffer
	URBGen6(&b, 2, StageIO{In: 64, Out: 0}, 0, false)
}
