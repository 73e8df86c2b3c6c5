package config

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// LevelSource is a parsed level text file, before symbol mapping
type LevelSource struct {
	Name       string
	Background string
	Rows       []string
}

// ParseLevel reads the plain-text level format: one row per line, blank
// lines ignored, and an optional leading "BG:<name>" directive.
func ParseLevel(name string, r io.Reader) (*LevelSource, error) {
	src := &LevelSource{Name: name}

	scanner := bufio.NewScanner(r)
	first := true
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if first && strings.HasPrefix(line, "BG:") {
			src.Background = strings.TrimSpace(strings.TrimPrefix(line, "BG:"))
			first = false
			continue
		}
		first = false
		src.Rows = append(src.Rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read level %s: %w", name, err)
	}

	return src, nil
}
