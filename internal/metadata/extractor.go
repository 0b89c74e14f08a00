// Package metadata reads the author recorded inside documents and images.
package metadata

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	"gitlab.com/tozd/go/errors"
)

// corePropertiesPath is where OOXML packages keep dc:creator.
const corePropertiesPath = "docProps/core.xml"

// Extractor reads the author of .docx files (core properties) and
// JPEG/TIFF images (EXIF Artist).
type Extractor struct{}

// NewExtractor creates an Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Author returns the recorded author of path.
// ErrUnsupportedFormat and ErrAuthorAbsent distinguish the two misses from
// an *ExtractError.
func (e *Extractor) Author(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx":
		return docxAuthor(path)
	case ".jpg", ".jpeg", ".tif", ".tiff":
		return exifArtist(path)
	default:
		return "", ErrUnsupportedFormat
	}
}

type coreProperties struct {
	Creator string `xml:"creator"`
}

func docxAuthor(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", &ExtractError{Path: path, Cause: err}
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != corePropertiesPath {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", &ExtractError{Path: path, Cause: err}
		}
		defer rc.Close()

		var props coreProperties
		if err := xml.NewDecoder(rc).Decode(&props); err != nil {
			return "", &ExtractError{Path: path, Cause: err}
		}
		return nonEmpty(props.Creator)
	}
	// No core properties part: the package is valid but records no author.
	return "", ErrAuthorAbsent
}

func exifArtist(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", &ExtractError{Path: path, Cause: err}
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return "", &ExtractError{Path: path, Cause: err}
		}
		// Readable image without an EXIF block.
		return "", ErrAuthorAbsent
	}

	tag, err := x.Get(exif.Artist)
	if err != nil {
		return "", ErrAuthorAbsent
	}
	artist, err := tag.StringVal()
	if err != nil {
		return "", &ExtractError{Path: path, Cause: err}
	}
	return nonEmpty(artist)
}

func nonEmpty(s string) (string, error) {
	s = strings.TrimSpace(strings.Trim(s, "\x00"))
	if s == "" {
		return "", ErrAuthorAbsent
	}
	return s, nil
}
