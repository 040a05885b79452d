package skipbom

import (
	"bytes"
	"testing"
)

func TestCatalogLengths(t *testing.T) {
	for _, bom := range All() {
		n := bom.Length()
		if n < 2 || n > MaxLength {
			t.Fatalf("%v: length %d", bom, n)
		}
		if n != len(bom.Bytes()) {
			t.Fatalf("%v: length %d vs %d bytes", bom, n, len(bom.Bytes()))
		}
	}
	if UTF32LE.Length() != MaxLength {
		t.Fatalf("no variant reaches MaxLength")
	}
}

func TestCatalogOrderStable(t *testing.T) {
	want := []BOM{UTF8, UTF32LE, UTF32BE, UTF16LE, UTF16BE, UTF7, UTF1, UTFEBCDIC, SCSU, BOCU1, GB18030}
	got := All()
	if len(got) != len(want) {
		t.Fatalf("got %d variants", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestUTF8MarkerBytes(t *testing.T) {
	if !bytes.Equal(UTF8.Bytes(), []byte{0xEF, 0xBB, 0xBF}) {
		t.Fatalf("got %x", UTF8.Bytes())
	}
}

func TestNoBOMHasNoBytes(t *testing.T) {
	if NoBOM.Bytes() != nil || NoBOM.Length() != 0 {
		t.Fatalf("got %x", NoBOM.Bytes())
	}
	if BOM(100).Bytes() != nil {
		t.Fatalf("out-of-range variant has bytes")
	}
}

func TestVariantTest(t *testing.T) {
	cases := []struct {
		bom  BOM
		s    []byte
		want bomTest
	}{
		{UTF8, nil, testIncomplete},
		{UTF8, []byte{0xEF}, testIncomplete},
		{UTF8, []byte{0xEF, 0xBB}, testIncomplete},
		{UTF8, []byte{0xEF, 0xBB, 0xBF}, testMatch},
		{UTF8, []byte{0xEF, 0xBB, 0xBF, 0x41}, testMatch},
		{UTF8, []byte{0xEF, 0xBC}, testNotBOM},
		{UTF8, []byte("he"), testNotBOM},
		{UTF32LE, []byte{0xFF, 0xFE}, testIncomplete},
		{UTF32LE, []byte{0xFF, 0xFE, 0x00, 0x00}, testMatch},
		{UTF16LE, []byte{0xFF, 0xFE, 0x00, 0x00}, testMatch},
		{NoBOM, []byte{0xEF}, testNotBOM},
		{NoBOM, nil, testNotBOM},
	}
	for _, c := range cases {
		if got := c.bom.test(c.s); got != c.want {
			t.Fatalf("%v.test(%x): got %v want %v", c.bom, c.s, got, c.want)
		}
	}
}

func TestStringNames(t *testing.T) {
	if UTF8.String() != "UTF-8" {
		t.Fatalf("got %q", UTF8.String())
	}
	if GB18030.String() != "GB18030" {
		t.Fatalf("got %q", GB18030.String())
	}
	if NoBOM.String() != "none" {
		t.Fatalf("got %q", NoBOM.String())
	}
}
