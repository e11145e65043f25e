package output

import (
	"io"
	"os"
)

// ResolveColorMode combines the --color flag with TTY detection into
// the effective isTTY value. "never" and "always" override detection;
// "auto" (or anything else) keeps the detected value.
func ResolveColorMode(colorMode string, isTTY bool) bool {
	switch colorMode {
	case "never":
		return false
	case "always":
		return true
	default:
		return isTTY
	}
}

// IsTTY reports whether a writer is a terminal. Only an os.File
// backed by a character device qualifies.
func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
