package sink

import (
	"strings"

	"github.com/evt3decode/evt3/errs"
)

// FieldOrder controls the column order CSV rows are written in.
type FieldOrder struct {
	indices [4]int
}

// Field indices into a CdEvent, used by FieldOrder.indices.
const (
	fieldX = iota
	fieldY
	fieldPolarity
	fieldTimestamp
)

// XYPT, TXYP and XYTP are the three field orders seen in practice: x,y,polarity,timestamp
// (the default, matching the reference C++ tooling), timestamp-first, and
// polarity-last.
var (
	XYPT = FieldOrder{indices: [4]int{fieldX, fieldY, fieldPolarity, fieldTimestamp}}
	TXYP = FieldOrder{indices: [4]int{fieldTimestamp, fieldX, fieldY, fieldPolarity}}
	XYTP = FieldOrder{indices: [4]int{fieldX, fieldY, fieldTimestamp, fieldPolarity}}
)

// Header returns the CSV header line for this field order, without a
// trailing newline.
func (fo FieldOrder) Header() string {
	names := [4]string{fieldX: "x", fieldY: "y", fieldPolarity: "polarity", fieldTimestamp: "timestamp"}

	var b strings.Builder
	for i, idx := range fo.indices {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(names[idx])
	}

	return b.String()
}

// ParseFieldOrder parses a comma-separated field list like "x,y,p,t" or
// "timestamp,x,y,polarity" into a FieldOrder. Each of x, y, polarity (p/pol),
// and timestamp (t/time) must appear exactly once.
func ParseFieldOrder(s string) (FieldOrder, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return FieldOrder{}, errs.ErrInvalidFieldOrder
	}

	var indices [4]int
	var used [4]bool

	for i, part := range parts {
		field, ok := fieldIndexFromName(strings.ToLower(strings.TrimSpace(part)))
		if !ok {
			return FieldOrder{}, errs.ErrUnknownFieldName
		}
		if used[field] {
			return FieldOrder{}, errs.ErrDuplicateFieldName
		}

		indices[i] = field
		used[field] = true
	}

	return FieldOrder{indices: indices}, nil
}

func fieldIndexFromName(name string) (int, bool) {
	switch name {
	case "x":
		return fieldX, true
	case "y":
		return fieldY, true
	case "p", "pol", "polarity":
		return fieldPolarity, true
	case "t", "time", "timestamp":
		return fieldTimestamp, true
	default:
		return 0, false
	}
}
