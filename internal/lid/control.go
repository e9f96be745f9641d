package lid

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadControlSentences extracts confounder sentences from a
// marker-annotated phrase list. Blank lines and links are dropped.
// Lines containing an equals sign hold a phrase and its translation;
// the side containing a marker is kept, left side preferred. Plain
// lines are kept when they contain any marker.
func LoadControlSentences(path string, markers []string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open control file: %w", err)
	}
	defer func() { _ = file.Close() }()

	sentences := make([]string, 0)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "http") {
			continue
		}
		if strings.Contains(line, "=") {
			parts := strings.Split(line, "=")
			left := strings.TrimSpace(parts[0])
			right := strings.TrimSpace(parts[1])
			if containsAny(left, markers) {
				sentences = append(sentences, left)
			} else if containsAny(right, markers) {
				sentences = append(sentences, right)
			}
			continue
		}
		if containsAny(line, markers) {
			sentences = append(sentences, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read control file: %w", err)
	}
	return sentences, nil
}

func containsAny(s string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}
