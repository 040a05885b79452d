package skipbom

import "io"

// detectState tracks how far BOM detection has progressed. Transitions are
// one-directional: undetermined -> pending -> resolved (pending is skipped
// when no payload byte was pulled past the marker), and the verdict never
// changes once set.
type detectState int

const (
	stateUndetermined detectState = iota // Leading bytes still ambiguous.
	statePending                         // Verdict fixed, buffered payload not yet delivered.
	stateResolved                        // Verdict fixed, reads pass straight through.
)

// Reader wraps an io.Reader and strips the leading BOM if present.
// It must not be used from more than one goroutine at a time.
type Reader struct {
	rd         io.Reader
	candidates []BOM
	state      detectState
	verdict    BOM        // Valid once state is past stateUndetermined.
	acc        pushBuffer // Accumulated leading bytes while undetermined.
	pending    []byte     // Undelivered payload slice into acc, statePending only.
	sawEOF     bool       // Underlying reader reported io.EOF.
}

// NewReader wraps rd with BOM detection for the given candidate variants.
// Pass All() to detect every known BOM. A nil or empty candidate list turns
// the Reader into a pure pass-through whose verdict is immediately "no BOM".
// The candidate slice is not copied and must not change afterwards.
func NewReader(rd io.Reader, candidates []BOM) *Reader {
	r := &Reader{rd: rd, candidates: candidates}
	if len(candidates) == 0 {
		r.state = stateResolved
	}

	return r
}

// DetectBOM reads from the underlying reader until the BOM presence is
// decided and returns the verdict. determined is false only when the
// underlying reader currently has no bytes to give before a verdict is
// possible (a zero-count read with no error); the caller may retry.
// At end of stream the verdict is fixed from the bytes in hand and no
// byte is lost: whatever was buffered is delivered by later Reads.
func (r *Reader) DetectBOM() (bom BOM, determined bool, err error) {
	if r.rd == nil {
		return NoBOM, false, ErrNilReader
	}

	if err := r.determine(true); err != nil {
		return NoBOM, false, err
	}

	if r.state == stateUndetermined {
		return NoBOM, false, nil
	}

	return r.verdict, true, nil
}

// BOM returns the verdict so far: the variant found (NoBOM for a plain
// stream) and whether the verdict is determined yet. It never performs I/O.
func (r *Reader) BOM() (bom BOM, determined bool) {
	if r.state == stateUndetermined {
		return NoBOM, false
	}

	return r.verdict, true
}

// Read implements io.Reader, delivering the stream with the marker bytes
// elided. While the leading bytes are still ambiguous, each call makes at
// most one read against the underlying reader and returns (0, nil) if that
// was not enough to decide; use BOM to distinguish this from end of data.
// Once decided, buffered payload is drained first and the rest of p is
// filled from the underlying reader in the same call.
func (r *Reader) Read(p []byte) (int, error) {
	if r.rd == nil {
		return 0, ErrNilReader
	}

	if len(p) == 0 {
		return 0, nil
	}

	if r.state == stateUndetermined {
		if err := r.determine(false); err != nil {
			return 0, err
		}

		if r.state == stateUndetermined {
			return 0, nil
		}
	}

	n := 0
	if r.state == statePending {
		n = copy(p, r.pending)
		r.pending = r.pending[n:]
		if len(r.pending) > 0 {
			return n, nil
		}

		r.state = stateResolved
		if n == len(p) {
			return n, nil
		}
	}

	if r.sawEOF {
		if n > 0 {
			return n, nil
		}

		return 0, io.EOF
	}

	m, err := r.rd.Read(p[n:])

	return n + m, err
}

// Inner returns the underlying reader, ending the decoration. Bytes already
// pulled during detection but not yet delivered are dropped; capture them
// with Buffered first if the full stream matters.
func (r *Reader) Inner() io.Reader {
	return r.rd
}

// Buffered returns the bytes pulled from the underlying reader that have
// not been delivered yet: the ambiguous leading bytes while undetermined,
// or the undelivered payload after a verdict. The slice is only valid until
// the next Read or DetectBOM call and must not be modified.
func (r *Reader) Buffered() []byte {
	switch r.state {
	case stateUndetermined:
		return r.acc.bytes()
	case statePending:
		return r.pending
	default:
		return nil
	}
}

// determine drives the detection state machine. With keepReading it issues
// underlying reads until a verdict or a read that yields nothing; otherwise
// it makes at most one read attempt. On return the state is either past
// stateUndetermined (verdict fixed) or unchanged (caller retries later).
// An I/O error is returned verbatim; bytes received alongside it are kept,
// so the call is safely retryable.
func (r *Reader) determine(keepReading bool) error {
	attempted := false
	for r.state == stateUndetermined {
		kind, bom, rest := classify(r.acc.bytes(), r.candidates, r.sawEOF)
		if kind != matchIncomplete {
			r.resolve(bom, rest)

			return nil
		}

		if attempted && !keepReading {
			return nil
		}

		n, err := r.fill()
		attempted = true
		if err != nil {
			if err == io.EOF {
				// Final classification happens on the next pass.
				r.sawEOF = true
				continue
			}

			return err
		}

		if n == 0 {
			// Nothing available right now; not an end of stream.
			return nil
		}
	}

	return nil
}

// fill makes one read against the underlying reader, sized to top the
// accumulation up to the detection window, and appends whatever arrived.
func (r *Reader) fill() (int, error) {
	var tmp [MaxLength]byte
	n, err := r.rd.Read(tmp[:r.acc.available()])
	if n > 0 {
		r.acc.push(tmp[:n])
	}

	return n, err
}

// resolve fixes the verdict and routes the payload remainder, if any, into
// the pending cursor.
func (r *Reader) resolve(bom BOM, rest []byte) {
	r.verdict = bom
	if len(rest) > 0 {
		r.pending = rest
		r.state = statePending
	} else {
		r.state = stateResolved
	}
}
