package objcat

// Result holds the outcome of extracting one object.
type Result struct {
	// Source identifies what was extracted: an object ID or a file path.
	Source string

	// Text is the decoded content.
	Text string

	// RawSize is the size of the inflated payload in bytes, before decoding.
	RawSize int

	// Lossy reports whether decoding altered the payload (the inflated
	// bytes contained invalid UTF-8).
	Lossy bool
}
