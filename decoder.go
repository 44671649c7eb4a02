package ustar

// decoderState tracks the decoder's progress through the block stream.
type decoderState uint8

const (
	// stateStart precedes the first block read.
	stateStart decoderState = iota

	// stateProcessing follows a header block.
	stateProcessing

	// stateEndOfData is terminal: a null block, an error block, or a
	// truncated buffer has been reached.
	stateEndOfData
)

// decoder walks an in-memory archive buffer block by block.
type decoder struct {
	buf     []byte
	state   decoderState
	cfg     config
	entries []Entry
}

// step consumes one header and its body, or transitions to stateEndOfData.
func (d *decoder) step() {
	if len(d.buf) < BlockSize {
		d.state = stateEndOfData
		return
	}
	block := d.buf[:BlockSize]
	d.buf = d.buf[BlockSize:]

	switch classifyBlock(block) {
	case blockHeader:
		d.state = stateProcessing
		d.readBody(decodeHeader(block))
	case blockNull:
		d.state = stateEndOfData
	case blockError:
		d.cfg.log().Debug("unrecognized block, stopping")
		d.state = stateEndOfData
	}
}

// readBody consumes the padded body following a header and appends the
// decoded entry. A body cut short by the end of the buffer drops the entry
// and terminates decoding.
func (d *decoder) readBody(meta MetaData) {
	length := padded(meta.FileSize)
	if int64(len(d.buf)) < length {
		d.cfg.log().Debug("truncated body, stopping", "name", meta.Filename)
		d.state = stateEndOfData
		return
	}
	body := d.buf[:length]
	d.buf = d.buf[length:]

	// Text bodies shed their padding; binary bodies keep it.
	var content Content
	switch DetectKind(meta.Filename) {
	case KindText:
		content = Text(body[:meta.FileSize])
	case KindBinary:
		content = Binary(body)
	}

	d.entries = append(d.entries, Entry{Meta: meta, Content: content})
	d.cfg.log().Debug("entry decoded",
		"name", meta.Filename,
		"size", meta.FileSize,
		"kind", DetectKind(meta.Filename).String(),
	)
}

// ExtractArchive decodes a complete archive buffer into its entries, in
// encode order.
//
// Decoding never fails: it stops at the first null block, at the first
// block that is neither a header nor all zeros, or when the buffer runs
// out mid-block or mid-body, and returns everything decoded up to that
// point. Each entry's metadata carries only the filename and file size
// read from its header; the remaining fields equal DefaultMetadata's.
func ExtractArchive(data []byte, opts ...Option) []Entry {
	d := &decoder{buf: data, state: stateStart, entries: []Entry{}}
	for _, opt := range opts {
		opt(&d.cfg)
	}
	for d.state != stateEndOfData {
		d.step()
	}
	d.cfg.log().Info("archive extracted", "entries", len(d.entries))
	return d.entries
}
