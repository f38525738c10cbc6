package domain

import (
	"bytes"
	"fmt"
	"sort"

	m "autoi18n.dev/pkg/autoi18n/internal/model"
)

// ApplyEdits applies edits to the snapshot src in one pass. Insertions at
// the same offset keep their relative order. Overlapping edits are an error.
func ApplyEdits(src []byte, edits []m.Edit) ([]byte, error) {
	if len(edits) == 0 {
		return src, nil
	}

	sorted := make([]m.Edit, len(edits))
	copy(sorted, edits)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	var (
		out    bytes.Buffer
		cursor uint32
	)

	size := uint32(len(src))

	for _, e := range sorted {
		if e.Start > e.End || e.End > size {
			return nil, fmt.Errorf("edit [%d,%d) out of range for %d bytes", e.Start, e.End, size)
		}

		if e.Start < cursor {
			return nil, fmt.Errorf("edit [%d,%d) overlaps a previous edit ending at %d", e.Start, e.End, cursor)
		}

		out.Write(src[cursor:e.Start])
		out.WriteString(e.Text)

		cursor = e.End
	}

	out.Write(src[cursor:])

	return out.Bytes(), nil
}
