package internal

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
)

// NewLogger creates a logger whose prefix identifies the file being processed.
//
// i and n are the zero-based ordinal and expected count.
func NewLogger(i, n int, name flags.Filename) *log.Logger {
	prefix := fmt.Sprintf(`[%d/%d] "%s" - `, i+1, n, TruncateRightWithSuffix(filepath.Base(string(name)), 30, "..."))
	return log.New(os.Stderr, prefix, 0)
}

// TruncateRightWithSuffix keeps the first n runes of text and only appends the suffix if truncation happens.
func TruncateRightWithSuffix(text string, n int, suffix string) string {
	rs := []rune(text)
	if len(rs) <= n {
		return text
	}

	return string(rs[:n]) + suffix
}
