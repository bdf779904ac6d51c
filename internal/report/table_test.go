package report

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exifview/internal/metadata"
)

func TestDump(t *testing.T) {
	records, err := metadata.Transform([]string{
		`[{"SourceFile": "/photos/a.jpg",
		   "ExifTool": {"ExifToolVersion": {"desc": "ExifTool Version Number", "val": 12.76}},
		   "EXIF": {"Make": {"desc": "Make", "val": "Canon"}, "FNumber": {"desc": "F Number", "val": 2.8}},
		   "Composite": {"GPSPosition": {"desc": "GPS Position", "val": "40 deg 30' 0.00\" N, 79 deg 15' 0.00\" W"}}}]`,
		`[{"SourceFile": "/photos/b.png", "File": {"FileType": {"desc": "File Type", "val": "PNG"}}}]`,
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	Dump(&buf, records, Options{})
	out := buf.String()

	assert.Contains(t, out, "/photos/a.jpg (1/2)")
	assert.Contains(t, out, "/photos/b.png (2/2)")
	assert.Contains(t, out, "Canon")
	assert.Contains(t, out, "2.8")
	assert.Contains(t, out, "https://www.openstreetmap.org/?mlat=40.5&mlon=-79.25&zoom=15")
	assert.Contains(t, out, "PNG")
	assert.NotContains(t, out, "ExifTool Version Number")

	assert.Less(t, strings.Index(out, "Make"), strings.Index(out, "F Number"))
	assert.Less(t, strings.Index(out, "Canon"), strings.Index(out, "/photos/b.png"))
}

func TestDumpNothing(t *testing.T) {
	var buf bytes.Buffer
	Dump(&buf, nil, Options{Color: true})
	assert.Empty(t, buf.String())
}

func TestProgress(t *testing.T) {
	p := NewProgress(io.Discard, 4)
	for i := 0; i < 4; i++ {
		p.Settled(i)
	}
	assert.InDelta(t, 1.0, p.Done(), 1e-9)
	p.Finish()
}
