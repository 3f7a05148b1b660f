package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapExtToFormat(t *testing.T) {
	assert.Equal(t, TEXT, MapExtToFormat(".pdf"))
	assert.Equal(t, TEXT, MapExtToFormat("docx"))
	assert.Equal(t, IMAGE, MapExtToFormat("JPG"))
	assert.Equal(t, IMAGE, MapExtToFormat(".tiff"))
	assert.Equal(t, "", MapExtToFormat("txt"))
	assert.Equal(t, "", MapExtToFormat(""))
}

func TestIsAllowedFilename(t *testing.T) {
	assert.True(t, IsAllowedFilename("jane_doe.pdf"))
	assert.True(t, IsAllowedFilename("scan.JPEG"))
	assert.False(t, IsAllowedFilename("notes.txt"))
	assert.False(t, IsAllowedFilename("no_extension"))
	assert.False(t, IsAllowedFilename("archive.tar.gz"))
}
