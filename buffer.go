package skipbom

// pushBuffer is a fixed-capacity buffer for the leading stream bytes that
// may still be marker bytes. Capacity is MaxLength; it only ever grows by
// appending and is discarded wholesale once the verdict is decided.
type pushBuffer struct {
	buf [MaxLength]byte // Storage; bytes past n are not meaningful.
	n   int             // Count of valid bytes, always <= MaxLength.
}

// push appends as many bytes of s as fit and returns how many were
// appended (0 when full). Excess bytes stay with the caller.
func (p *pushBuffer) push(s []byte) int {
	count := copy(p.buf[p.n:], s)
	p.n += count

	return count
}

// bytes returns the valid prefix.
func (p *pushBuffer) bytes() []byte {
	return p.buf[:p.n]
}

// available returns the remaining capacity.
func (p *pushBuffer) available() int {
	return MaxLength - p.n
}
