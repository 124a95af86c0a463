package types

// EditInfo describes a content change in byte offsets.
// Bytes in [Start, OldEnd) were replaced by bytes in [Start, NewEnd).
type EditInfo struct {
	Start  int
	OldEnd int
	NewEnd int
}

// InsertEdit describes n bytes inserted at offset at.
func InsertEdit(at, n int) EditInfo {
	return EditInfo{Start: at, OldEnd: at, NewEnd: at + n}
}

// DeleteEdit describes the removal of [start, end).
func DeleteEdit(start, end int) EditInfo {
	return EditInfo{Start: start, OldEnd: end, NewEnd: start}
}

// Delta is the change in buffer length caused by the edit.
func (e EditInfo) Delta() int {
	return (e.NewEnd - e.Start) - (e.OldEnd - e.Start)
}

// IsInsert reports whether the edit only adds bytes.
func (e EditInfo) IsInsert() bool {
	return e.OldEnd == e.Start && e.NewEnd > e.Start
}

// IsDelete reports whether the edit only removes bytes.
func (e EditInfo) IsDelete() bool {
	return e.NewEnd == e.Start && e.OldEnd > e.Start
}

// Range is a half-open byte interval [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes covered.
func (r Range) Len() int {
	return r.End - r.Start
}

// Contains reports whether offset p lies inside the range.
func (r Range) Contains(p int) bool {
	return p >= r.Start && p < r.End
}
