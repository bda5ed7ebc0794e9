package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/socialdir/socialdir/internal/digest"
)

// JSON writes the digest as indented JSON to stdout
func JSON(d digest.Digest) error {
	return JSONTo(os.Stdout, d)
}

// JSONTo writes the digest as indented JSON to the given writer
func JSONTo(w io.Writer, d digest.Digest) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(d)
}

// Write renders the digest in the specified format
func Write(format string, d digest.Digest) error {
	switch format {
	case "json":
		return JSON(d)
	case "table", "":
		return Digest(d)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
