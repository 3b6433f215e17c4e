package tiffcore

// Capabilities is the codec hook vtable: the set of operations a pixel
// codec plug-in can implement so the directory layer can drive it through
// the decode/encode lifecycle without ever interpreting pixel data
// itself. A zero-value Capabilities (all fields nil) is valid — a caller
// that never registers a codec simply never gets these calls made.
type Capabilities struct {
	// Cleanup releases any resources a codec allocated for the current
	// directory (scratch buffers, subsampling tables). Flush calls it
	// with finalize=true, after PostEncode and before the directory is
	// written.
	Cleanup func() error

	// Close is called once, when the Handle itself is closed, for
	// resources that outlive any single directory.
	Close func() error

	// PostEncode is called first by Flush with finalize=true, giving the
	// codec a chance to flush any trailing state (e.g. an arithmetic
	// coder's final bits) before the directory is written.
	PostEncode func() error

	// SetupDecode is called once per directory, before the first
	// DecodeRow call, so the codec can read whatever extra tags it needs
	// (e.g. JPEGTables) from the now-fully-parsed Directory.
	SetupDecode func(dir *Directory) error

	// PreDecode is called before decoding each strip or tile, receiving
	// that unit's raw compressed bytes.
	PreDecode func(raw []byte) error

	// DecodeRow decodes one row of already-PreDecode'd data into dst.
	DecodeRow func(dst []byte, row int) error
}

// NeedsCapabilities reports whether the caller has registered any codec
// hooks at all. The core does not consult it; it checks each hook for nil
// at its call site.
func (c Capabilities) NeedsCapabilities() bool {
	return c.Cleanup != nil || c.Close != nil || c.PostEncode != nil ||
		c.SetupDecode != nil || c.PreDecode != nil || c.DecodeRow != nil
}
