// Package output provides common output formatting utilities.
package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/dustin/go-humanize"
)

// JSON writes indented JSON to w.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Size formats a byte count in binary units (KiB, MiB, ...).
// Negative counts mean "unknown" to the daemon.
func Size(n int64) string {
	if n < 0 {
		return "unknown"
	}
	return humanize.IBytes(uint64(n))
}

// Seconds formats a fractional number of seconds as a rounded duration.
func Seconds(s float64) string {
	return time.Duration(s * float64(time.Second)).Round(time.Second).String()
}
