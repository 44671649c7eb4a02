package ustar

import "github.com/meigma/ustar/internal/pathext"

// Content is the body of an archive entry: either Text or Binary.
//
// The two variants decode differently. A Text body is truncated to the
// entry's exact file size, discarding the block padding; a Binary body
// keeps the full padded length, trailing zeros included.
type Content interface {
	// Size returns the content length in bytes.
	Size() int64

	isContent()
}

// Text is character content.
type Text string

// Binary is raw byte content.
type Binary []byte

func (t Text) Size() int64 { return int64(len(t)) }
func (t Text) isContent()  {}

func (b Binary) Size() int64 { return int64(len(b)) }
func (b Binary) isContent()  {}

// Entry pairs an archive entry's metadata with its content.
type Entry struct {
	Meta    MetaData
	Content Content
}

// TextEntry builds an entry with default metadata, text content, and the
// given filename.
func TextEntry(name, body string) Entry {
	meta := DefaultMetadata()
	meta.Filename = name
	meta.FileSize = int64(len(body))
	return Entry{Meta: meta, Content: Text(body)}
}

// BinaryEntry builds an entry with default metadata, binary content, and
// the given filename.
func BinaryEntry(name string, data []byte) Entry {
	meta := DefaultMetadata()
	meta.Filename = name
	meta.FileSize = int64(len(data))
	return Entry{Meta: meta, Content: Binary(data)}
}

// ContentKind tells a decoder whether to materialize a body as Text or
// Binary.
type ContentKind uint8

const (
	KindBinary ContentKind = iota
	KindText
)

func (k ContentKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// textExtensions are the filename extensions decoded as Text.
var textExtensions = map[string]bool{
	"text": true,
	"txt":  true,
	"tex":  true,
}

// DetectKind classifies a body by the filename's extension. Names without
// an extension classify as binary.
func DetectKind(filename string) ContentKind {
	ext, ok := pathext.Ext(filename)
	if ok && textExtensions[ext] {
		return KindText
	}
	return KindBinary
}
