package skipbom

// matchKind classifies an accumulation against a whole candidate set.
type matchKind int

const (
	matchIncomplete matchKind = iota // A verdict needs more bytes.
	matchFound                       // s starts with one candidate's full marker.
	matchNone                        // s cannot start with any candidate marker.
)

// classify compares s against every candidate and reports the combined
// verdict plus the payload remainder of s (the bytes after the marker for
// matchFound, all of s for matchNone, nil while incomplete).
//
// A candidate that s is still a compatible strict prefix of holds the
// result at matchIncomplete even when a shorter candidate already matched
// in full: committing early would misread, say, a UTF-32LE stream as
// UTF-16LE when only its first two bytes have arrived. Once a verdict is
// possible the longest fully matched candidate wins, independent of the
// order candidates are listed in.
//
// final means the stream can deliver no more bytes; candidates that would
// need more input are then excluded instead of holding the result open.
func classify(s []byte, candidates []BOM, final bool) (matchKind, BOM, []byte) {
	found := NoBOM
	incomplete := false

	for _, c := range candidates {
		switch c.test(s) {
		case testIncomplete:
			incomplete = true
		case testMatch:
			if c.Length() > found.Length() {
				found = c
			}
		}
	}

	if incomplete && !final {
		return matchIncomplete, NoBOM, nil
	}

	if found != NoBOM {
		return matchFound, found, s[found.Length():]
	}

	return matchNone, NoBOM, s
}
