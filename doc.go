// Package ustar encodes and decodes USTAR tape archives in memory.
//
// The package is a pure codec: it turns a list of (metadata, content)
// entries into a single byte stream of 512-byte blocks and parses such a
// stream back into entries. Persisting or transmitting the bytes is the
// caller's concern.
//
// An archive consists of, per entry:
//   - Header block: one 512-byte block encoding the entry's metadata at
//     fixed field offsets, tagged with the "ustar" magic
//   - Body blocks: the entry's content, zero-padded to the next 512-byte
//     boundary
//
// followed by two all-zero blocks terminating the stream.
//
// # Quick Start
//
// Build an archive:
//
//	data := ustar.CreateArchive([]ustar.Entry{
//	    ustar.TextEntry("readme.txt", "hello"),
//	    ustar.BinaryEntry("logo.png", pngBytes),
//	})
//
// Or stream entries to any io.Writer without materializing the buffer:
//
//	enc := ustar.NewEncoder(w)
//	err := enc.WriteTextFile("readme.txt", "hello")
//	...
//	err = enc.Close()
//
// Read it back:
//
//	entries := ustar.ExtractArchive(data)
//
// # Decode contract
//
// Decoding is intentionally partial: it recovers each entry's filename and
// file size, and every other metadata field carries [DefaultMetadata]'s
// value. Entries whose filename ends in ".txt", ".text", or ".tex" decode
// as [Text] truncated to the exact file size; all other entries decode as
// [Binary] and retain their zero padding up to the block boundary.
package ustar
