// ABOUTME: Fuzz tests for blob decoding and lookup
// ABOUTME: Uses Go native fuzzing to check arbitrary bytes never panic

package blob

import (
	"testing"
)

// FuzzValidate checks that decoding never panics and that any blob accepted by
// Validate can be walked by Find
func FuzzValidate(f *testing.F) {
	a := Root(1)
	b, _ := Derive(2, []Base{{Data: a}})
	c, _ := Derive(3, []Base{{Data: b}, {Data: Root(4), Offset: 24}})
	d, _ := Derive(5, []Base{{Data: Root(6)}, {Data: c, Offset: 24}})

	f.Add([]byte(a), uint32(1))
	f.Add([]byte(c), uint32(4))
	f.Add([]byte(d), uint32(2))
	f.Add([]byte{}, uint32(0))
	f.Add([]byte{0xff, 0xff, 0xff, 0xff}, uint32(7))
	f.Add([]byte(c[:len(c)-3]), uint32(4))

	f.Fuzz(func(t *testing.T, data []byte, id uint32) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("panicked on %d bytes: %v", len(data), r)
			}
		}()

		if err := Validate(data); err != nil {
			return
		}

		blob := Blob(data)
		off, ok := blob.Find(id)

		blocks, err := blob.Blocks()
		if err != nil {
			t.Fatalf("Blocks() failed after Validate succeeded: %v", err)
		}

		// Find must agree with a linear scan of the decoded blocks
		var wantOff int64
		wantOK := false
	scan:
		for _, blk := range blocks {
			for _, x := range blk.IDs {
				if x == id {
					wantOff, wantOK = blk.Offset, true
					break scan
				}
			}
		}
		if ok != wantOK || off != wantOff {
			t.Errorf("Find(%d) = (%d, %v), want (%d, %v)", id, off, ok, wantOff, wantOK)
		}
	})
}
