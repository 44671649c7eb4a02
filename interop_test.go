package ustar

import (
	"archive/tar"
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Interoperability against the standard library's tar implementation, which
// validates checksums and field framing we would otherwise only assert
// against ourselves.

func TestStdlibReadsOurArchives(t *testing.T) {
	t.Parallel()

	content := []byte{0x00, 0x01, 0xFE, 0xFF}
	data := CreateArchive([]Entry{
		TextEntry("hello.txt", "hello world"),
		BinaryEntry("blob.bin", content),
	})

	tr := tar.NewReader(bytes.NewReader(data))

	hdr, err := tr.Next()
	require.NoError(t, err, "stdlib rejects the first header (bad checksum or framing)")
	assert.Equal(t, "hello.txt", hdr.Name)
	assert.Equal(t, int64(11), hdr.Size)
	assert.Equal(t, byte(tar.TypeReg), hdr.Typeflag)
	assert.Equal(t, int64(0o644), hdr.Mode)
	assert.Equal(t, 1000, hdr.Uid)
	assert.Equal(t, 1000, hdr.Gid)

	body, err := io.ReadAll(tr)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(body))

	hdr, err = tr.Next()
	require.NoError(t, err)
	assert.Equal(t, "blob.bin", hdr.Name)
	body, err = io.ReadAll(tr)
	require.NoError(t, err)
	assert.Equal(t, content, body)

	_, err = tr.Next()
	assert.ErrorIs(t, err, io.EOF, "stdlib sees a clean terminator")
}

func TestWeReadStdlibArchives(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)

	files := []struct {
		name string
		body string
	}{
		{"notes.txt", "stdlib wrote this"},
		{"raw.dat", "opaque bytes"},
	}
	for _, f := range files {
		hdr := &tar.Header{
			Name:     f.name,
			Size:     int64(len(f.body)),
			Mode:     0o644,
			ModTime:  time.Unix(0, 0),
			Typeflag: tar.TypeReg,
			Format:   tar.FormatUSTAR,
		}
		require.NoError(t, tw.WriteHeader(hdr))
		_, err := io.WriteString(tw, f.body)
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())

	entries := ExtractArchive(buf.Bytes())
	require.Len(t, entries, 2)

	assert.Equal(t, "notes.txt", entries[0].Meta.Filename)
	assert.Equal(t, int64(len(files[0].body)), entries[0].Meta.FileSize)
	assert.Equal(t, Text(files[0].body), entries[0].Content)

	assert.Equal(t, "raw.dat", entries[1].Meta.Filename)
	assert.Equal(t, int64(len(files[1].body)), entries[1].Meta.FileSize)
	raw, ok := entries[1].Content.(Binary)
	require.True(t, ok)
	assert.Equal(t, []byte(files[1].body), []byte(raw)[:len(files[1].body)])
}
