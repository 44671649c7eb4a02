package ustar

import (
	"bytes"
	"fmt"
	"io"
)

// Encoder writes archive entries to an io.Writer as they arrive, without
// materializing the final byte buffer. Close writes the archive terminator.
//
// An Encoder is not safe for concurrent use.
type Encoder struct {
	w      io.Writer
	cfg    config
	closed bool
}

// NewEncoder returns an encoder that writes archive blocks to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	e := &Encoder{w: w}
	for _, opt := range opts {
		opt(&e.cfg)
	}
	return e
}

// WriteEntry writes one entry: its header block, its content, and zero
// padding up to the next block boundary. The header's size field is
// recomputed from the actual content length, overriding entry.Meta.FileSize.
func (e *Encoder) WriteEntry(entry Entry) error {
	if e.closed {
		return ErrClosed
	}

	meta := entry.Meta
	meta.FileSize = entry.Content.Size()

	header := encodeHeader(meta)
	if _, err := e.w.Write(header[:]); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	var err error
	switch c := entry.Content.(type) {
	case Text:
		_, err = io.WriteString(e.w, string(c))
	case Binary:
		_, err = e.w.Write(c)
	}
	if err != nil {
		return fmt.Errorf("write body: %w", err)
	}

	if pad := padded(meta.FileSize) - meta.FileSize; pad > 0 {
		if _, err := e.w.Write(zeroBlock[:pad]); err != nil {
			return fmt.Errorf("write padding: %w", err)
		}
	}

	e.cfg.log().Debug("entry written",
		"name", meta.Filename,
		"size", meta.FileSize,
		"blocks", 1+padded(meta.FileSize)/BlockSize,
	)
	return nil
}

// WriteEntries writes entries in order.
func (e *Encoder) WriteEntries(entries ...Entry) error {
	for _, entry := range entries {
		if err := e.WriteEntry(entry); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile writes one binary entry with default metadata and the given
// filename.
func (e *Encoder) WriteFile(name string, data []byte) error {
	return e.WriteEntry(BinaryEntry(name, data))
}

// WriteTextFile writes one text entry with default metadata and the given
// filename.
func (e *Encoder) WriteTextFile(name, body string) error {
	return e.WriteEntry(TextEntry(name, body))
}

// Close terminates the archive with two all-zero blocks. It is idempotent;
// entries written after Close return ErrClosed.
func (e *Encoder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	if _, err := e.w.Write(zeroBlock[:]); err != nil {
		return fmt.Errorf("write terminator: %w", err)
	}
	if _, err := e.w.Write(zeroBlock[:]); err != nil {
		return fmt.Errorf("write terminator: %w", err)
	}
	e.cfg.log().Info("archive terminated")
	return nil
}

// CreateArchive encodes entries, in order, into a complete archive buffer:
// header and padded body per entry, then the 1024-byte terminator. An empty
// entry list yields just the terminator.
func CreateArchive(entries []Entry, opts ...Option) []byte {
	var buf bytes.Buffer
	enc := NewEncoder(&buf, opts...)
	// bytes.Buffer writes cannot fail.
	for _, entry := range entries {
		_ = enc.WriteEntry(entry)
	}
	_ = enc.Close()
	return buf.Bytes()
}
