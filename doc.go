/*
Package skipbom reads a byte stream and transparently skips the encoding
byte-order mark (BOM) at its start, if one is present.

Reader wraps any io.Reader. While the leading bytes are still ambiguous it
buffers at most MaxLength bytes; once the BOM presence is decided, buffered
payload bytes are delivered first and every later read passes straight
through to the underlying reader. Marker bytes are never delivered.

Detection is incremental: it survives underlying readers that return one
byte at a time, caller buffers of any size (including 1), and overlapping
candidates such as UTF-16LE (FF FE) being a strict prefix of UTF-32LE
(FF FE 00 00) - the longer candidate is never shadowed while it can still
be completed. At end of stream the verdict is fixed from the bytes in hand
and any buffered bytes are returned as ordinary payload, so nothing is lost.

Use NewReader(rd, All()) to detect every known BOM, or pass a subset.
Use DetectBOM to force a verdict before reading payload.
Use BOM to query the verdict so far without performing any I/O.
Use Buffered before Inner if undelivered bytes must not be dropped.

# Examples

Read a stream after checking that it starts with a BOM:

	src := bytes.NewReader(append([]byte{0xEF, 0xBB, 0xBF}, "hello"...))
	r := skipbom.NewReader(src, skipbom.All())
	bom, determined, err := r.DetectBOM()
	if err != nil {
		return err
	}
	// bom == skipbom.UTF8, determined == true
	payload, err := io.ReadAll(r) // "hello"

Read a stream and check the BOM only afterwards:

	r := skipbom.NewReader(src, skipbom.All())
	payload, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if bom, ok := r.BOM(); ok {
		fmt.Println("stream encoding marker:", bom)
	}

Detect only some variants; anything else is plain payload:

	r := skipbom.NewReader(src, []skipbom.BOM{skipbom.UTF8, skipbom.GB18030})

Unwrap without losing bytes pulled during detection:

	rest := r.Buffered()
	inner := r.Inner()
	full := io.MultiReader(bytes.NewReader(rest), inner)
*/
package skipbom
