/*
Package tagattr scans the raw byte content of a markup start tag into a
sequence of key/value attributes.

The scanner operates on the bytes following the element name and knows two
dialects. XML mode is strict: every attribute must have a value and the
value must be quoted. HTML mode additionally accepts unquoted values and
key-only boolean attributes. Malformed attributes are reported as errors in
the sequence rather than aborting the scan, so callers can choose between
stopping at the first error and collecting everything that remains
well-formed.

Example of scanning a tag:

	buf := []byte(`img src="logo.png" alt='A logo'`)

	attrs := tagattr.New(buf, 3) // 3 skips the element name "img"
	for a, err := range attrs.All() {
		if err != nil {
			// a malformed attribute; scanning has already recovered
			continue
		}
		fmt.Printf("%s = %s\n", a.Key, a.Value)
	}

Attribute values are yielded in their raw, escaped form. Entity decoding is
deliberately left to the caller; this package neither unescapes values nor
validates that keys are legal names.

Duplicate keys within one tag are reported as errors by default. The check
compares every new key against all keys seen so far, so it can be disabled
with WithChecks(false) when throughput matters more:

	attrs := tagattr.New(buf, 3).WithChecks(false)

All error positions are byte offsets relative to the start of the scanned
buffer, which makes them stable regardless of where the tag sits inside the
surrounding document.
*/
package tagattr
