package source

import (
	"bytes"
	"os"

	"golang.org/x/text/encoding/unicode"
)

// ReadFileText reads a source or configuration file from disk and normalizes
// it to UTF-8 with \n line endings: UTF-16 content (detected by BOM) is
// transcoded, a UTF-8 BOM is stripped, and CRLF pairs are collapsed. The
// returned flags record which normalizations happened.
func ReadFileText(path string) ([]byte, FileFlags, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, err
	}

	flags := FileFlags(0)

	switch {
	case bytes.HasPrefix(content, []byte{0xFF, 0xFE}), bytes.HasPrefix(content, []byte{0xFE, 0xFF}):
		// ExpectBOM consumes the BOM and picks the matching byte order.
		dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
		decoded, derr := dec.Bytes(content)
		if derr != nil {
			return nil, 0, derr
		}
		content = decoded
		flags |= FileHadBOM | FileDecodedUTF16

	case bytes.HasPrefix(content, []byte{0xEF, 0xBB, 0xBF}):
		content = content[3:]
		flags |= FileHadBOM
	}

	content, hadCRLF := normalizeCRLF(content)
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return content, flags, nil
}
