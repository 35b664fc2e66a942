package analysis

import (
	"fmt"
	"io"
	"os"
)

// ReadFileSafe reads up to maxChars bytes of a file's content. It never
// returns an error: unreadable files yield an inline marker string so a
// single bad file cannot abort a batch. Callers that must distinguish real
// content check for the marker prefix.
func ReadFileSafe(path string, maxChars int) string {
	if maxChars <= 0 {
		return ""
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Sprintf("[Error reading file: %v]", err)
	}
	defer f.Close()

	buf := make([]byte, maxChars)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return fmt.Sprintf("[Error reading file: %v]", err)
	}
	return string(buf[:n])
}

// IsReadError reports whether content is the inline marker produced by
// ReadFileSafe for an unreadable file.
func IsReadError(content string) bool {
	return len(content) >= 6 && content[:6] == "[Error"
}
