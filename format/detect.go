// Package format sniffs input files so that non-PDF reports are rejected
// before any parsing starts.
package format

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format is the kind of file a report was delivered as.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PDF indicates a PDF document.
	PDF
	// ZIP indicates a ZIP container such as an office document export.
	ZIP
	// HTML indicates an HTML page saved from a reporting portal.
	HTML
	// Image indicates a PNG or JPEG scan.
	Image
)

// sniffLen is the number of leading bytes inspected by DetectFile and
// searched for the PDF signature.
const sniffLen = 1024

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PDF:
		return "PDF"
	case ZIP:
		return "ZIP"
	case HTML:
		return "HTML"
	case Image:
		return "Image"
	default:
		return "Unknown"
	}
}

// Detect determines the format from the filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return PDF
	case ".zip", ".docx", ".xlsx", ".hwpx":
		return ZIP
	case ".html", ".htm":
		return HTML
	case ".png", ".jpg", ".jpeg":
		return Image
	default:
		return Unknown
	}
}

var (
	pdfMagic  = []byte("%PDF")
	zipMagic  = []byte{0x50, 0x4B, 0x03, 0x04}
	pngMagic  = []byte{0x89, 'P', 'N', 'G'}
	jpegMagic = []byte{0xFF, 0xD8, 0xFF}
)

// DetectFromMagic checks leading magic bytes. Some producers write a few
// bytes of junk before the PDF header, so the PDF signature is accepted
// anywhere in the first 1024 bytes.
func DetectFromMagic(data []byte) Format {
	if len(data) < 3 {
		return Unknown
	}

	head := data
	if len(head) > sniffLen {
		head = head[:sniffLen]
	}
	if bytes.Contains(head, pdfMagic) {
		return PDF
	}

	switch {
	case bytes.HasPrefix(data, zipMagic):
		return ZIP
	case bytes.HasPrefix(data, pngMagic), bytes.HasPrefix(data, jpegMagic):
		return Image
	}

	if detectHTMLMagic(data) {
		return HTML
	}
	return Unknown
}

// detectHTMLMagic checks if the data looks like HTML content.
func detectHTMLMagic(data []byte) bool {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return false
	}

	upper := strings.ToUpper(string(data))
	if strings.HasPrefix(upper, "<!DOCTYPE HTML") || strings.HasPrefix(upper, "<HTML") {
		return true
	}
	// XHTML
	if strings.HasPrefix(upper, "<?XML") && strings.Contains(upper[:min(500, len(upper))], "<HTML") {
		return true
	}
	return false
}

// DetectReader reads the first bytes of r and sniffs them.
func DetectReader(r io.Reader) (Format, error) {
	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return Unknown, err
	}
	return DetectFromMagic(buf[:n]), nil
}

// DetectFile opens path and sniffs its content. The extension is consulted
// only when the content is not recognized.
func DetectFile(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return Unknown, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	got, err := DetectReader(f)
	if err != nil {
		return Unknown, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if got == Unknown {
		// An extension never promotes unreadable content to PDF.
		if ext := Detect(path); ext != PDF {
			return ext, nil
		}
	}
	return got, nil
}
