package skipbom

import "bytes"

// BOM identifies a byte-order mark variant.
// The zero value NoBOM doubles as the verdict for streams without a marker.
type BOM int

// Known BOM variants. See https://www.unicode.org/faq/utf_bom.html#bom1.
const (
	NoBOM     BOM = iota // No marker (also the zero value).
	UTF8                 // EF BB BF
	UTF16LE              // FF FE
	UTF16BE              // FE FF
	UTF32LE              // FF FE 00 00
	UTF32BE              // 00 00 FE FF
	UTF7                 // 2B 2F 76
	UTF1                 // F7 64 4C
	UTFEBCDIC            // DD 73 66 73
	SCSU                 // 0E FE FF
	BOCU1                // FB EE 28
	GB18030              // 84 31 95 33
)

// MaxLength is the longest BOM byte sequence in the catalog.
const MaxLength = 4

var bomSequences = [...][]byte{
	NoBOM:     nil,
	UTF8:      {0xEF, 0xBB, 0xBF},
	UTF16LE:   {0xFF, 0xFE},
	UTF16BE:   {0xFE, 0xFF},
	UTF32LE:   {0xFF, 0xFE, 0x00, 0x00},
	UTF32BE:   {0x00, 0x00, 0xFE, 0xFF},
	UTF7:      {0x2B, 0x2F, 0x76},
	UTF1:      {0xF7, 0x64, 0x4C},
	UTFEBCDIC: {0xDD, 0x73, 0x66, 0x73},
	SCSU:      {0x0E, 0xFE, 0xFF},
	BOCU1:     {0xFB, 0xEE, 0x28},
	GB18030:   {0x84, 0x31, 0x95, 0x33},
}

// All returns every known BOM variant in stable catalog order.
// The slice is fresh on each call, so callers may reorder or trim it.
func All() []BOM {
	return []BOM{UTF8, UTF32LE, UTF32BE, UTF16LE, UTF16BE, UTF7, UTF1, UTFEBCDIC, SCSU, BOCU1, GB18030}
}

// Bytes returns b's marker byte sequence, nil for NoBOM or an out-of-range
// value. The returned slice is shared; callers must not modify it.
func (b BOM) Bytes() []byte {
	if b < 0 || int(b) >= len(bomSequences) {
		return nil
	}

	return bomSequences[b]
}

// Length returns the byte length of b's marker sequence (0 for NoBOM).
func (b BOM) Length() int {
	return len(b.Bytes())
}

// String returns a user-friendly name for the variant. Satisfies fmt.Stringer.
func (b BOM) String() string {
	switch b {
	case UTF8:
		return "UTF-8"
	case UTF16LE:
		return "UTF-16LE"
	case UTF16BE:
		return "UTF-16BE"
	case UTF32LE:
		return "UTF-32LE"
	case UTF32BE:
		return "UTF-32BE"
	case UTF7:
		return "UTF-7"
	case UTF1:
		return "UTF-1"
	case UTFEBCDIC:
		return "UTF-EBCDIC"
	case SCSU:
		return "SCSU"
	case BOCU1:
		return "BOCU-1"
	case GB18030:
		return "GB18030"
	default:
		return "none"
	}
}

// bomTest is the three-valued result of testing bytes against one variant.
type bomTest int

const (
	testNotBOM     bomTest = iota // s cannot start with this marker.
	testIncomplete                // s is a strict prefix; more bytes needed.
	testMatch                     // s starts with the full marker.
)

// test classifies s against b's marker sequence. NoBOM never matches.
func (b BOM) test(s []byte) bomTest {
	seq := b.Bytes()
	if len(seq) == 0 {
		return testNotBOM
	}

	if len(s) < len(seq) {
		if bytes.Equal(s, seq[:len(s)]) {
			return testIncomplete
		}

		return testNotBOM
	}

	if bytes.Equal(s[:len(seq)], seq) {
		return testMatch
	}

	return testNotBOM
}
