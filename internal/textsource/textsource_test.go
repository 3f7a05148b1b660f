package textsource

import (
	"archive/zip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnav-deshpande/kalakaar/internal/common"
)

type fakeRunner struct {
	stdout []byte
	stderr []byte
	err    error

	gotName string
	gotArgs []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.gotName = name
	f.gotArgs = args
	return f.stdout, f.stderr, f.err
}

const sampleTSV = "level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext\n" +
	"1\t1\t0\t0\t0\t0\t0\t0\t100\t100\t-1\t\n" +
	"5\t1\t1\t1\t1\t1\t0\t0\t10\t10\t96\tJane\n" +
	"5\t1\t1\t1\t1\t2\t12\t0\t10\t10\t94\tDoe\n" +
	"5\t1\t1\t1\t2\t1\t0\t12\t10\t10\t90\tvocalist\n" +
	"5\t1\t2\t1\t1\t1\t0\t40\t10\t10\t80\tjane@example.com\n"

func TestExtractImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scan.png")
	require.NoError(t, os.WriteFile(path, []byte("not a real png"), 0o644))

	r := &fakeRunner{stdout: []byte(sampleTSV)}
	e := NewExtractorWithRunner(Config{TesseractLang: "eng"}, r, nil)

	res, err := e.Extract(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe\nvocalist\n\njane@example.com", res.Text)
	assert.Equal(t, "image-ocr", res.Method)
	assert.Equal(t, "tesseract", r.gotName)
	assert.Contains(t, r.gotArgs, "tsv")
	assert.InDelta(t, 0.90, res.Confidence, 0.001)
}

func TestExtractImageTesseractFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scan.jpg")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	r := &fakeRunner{err: errors.New("exit status 1"), stderr: []byte("boom")}
	e := NewExtractorWithRunner(Config{}, r, nil)

	_, err := e.Extract(context.Background(), path)
	assert.ErrorIs(t, err, common.ErrExtractionFailed)
}

func TestExtractUnsupportedExtension(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	_, err := e.Extract(context.Background(), "notes.txt")
	assert.ErrorIs(t, err, common.ErrUnsupportedFormat)
}

func TestExtractShortTextIsReported(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scan.png")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	tsv := "level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext\n" +
		"5\t1\t1\t1\t1\t1\t0\t0\t10\t10\t96\thi\n"
	r := &fakeRunner{stdout: []byte(tsv)}
	e := NewExtractorWithRunner(Config{}, r, nil)

	res, err := e.Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "hi", res.Text)
}

func TestExtractDOCX(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bio.docx")

	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Jane Doe is a </w:t></w:r><w:r><w:t>classical vocalist.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Contact: jane@example.com</w:t></w:r></w:p>
  </w:body>
</w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	e := NewExtractor(Config{}, nil)
	res, err := e.Extract(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "docx-text", res.Method)
	assert.Contains(t, res.Text, "Jane Doe is a classical vocalist.")
	assert.Contains(t, res.Text, "Contact: jane@example.com")
}

func TestExtractDOCXMissingBody(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bio.docx")

	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	_, err = zw.Create("word/styles.xml")
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	e := NewExtractor(Config{}, nil)
	_, err = e.Extract(context.Background(), path)
	require.ErrorIs(t, err, common.ErrExtractionFailed)
	assert.Contains(t, err.Error(), "word/document.xml")
}

func TestAssembleTSVEmpty(t *testing.T) {
	text, conf := assembleTSV("level\tpage_num\n")
	assert.Empty(t, text)
	assert.Zero(t, conf)
}
