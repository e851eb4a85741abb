// Package input loads schematic text from a file or stdin.
package input

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Stdin is the path that selects the stdin reader.
const Stdin = "-"

var ErrNoInput = errors.New("no input file provided")

// Read returns the whole content of the file at path, or of stdin when path
// is Stdin, with trailing whitespace stripped from every line.
func Read(path string, stdin io.Reader) (string, error) {
	if path == "" {
		return "", ErrNoInput
	}

	if path == Stdin {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("cannot read stdin: %w", err)
		}
		slog.Debug("read schematic from stdin", "size", len(data))
		return trimLines(string(data)), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot read schematic at %s: %w", path, err)
	}
	slog.Debug("read schematic", "path", path, "size", len(data))
	return trimLines(string(data)), nil
}

// trimLines drops trailing blanks of every line, keeping the line breaks.
func trimLines(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	return strings.Join(lines, "\n")
}
