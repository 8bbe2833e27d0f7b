package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line. A missing file yields no lines.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// ForAttempt keeps the lines that mention the load attempt id.
func ForAttempt(lines []string, attempt string) []string {
	attempt = strings.TrimSpace(attempt)
	if attempt == "" {
		return lines
	}
	var out []string
	for _, line := range lines {
		if strings.Contains(line, attempt) {
			out = append(out, line)
		}
	}
	return out
}

// Entry is one line written by the standard logger with date, time and
// short file flags.
type Entry struct {
	Timestamp string
	Source    string
	Message   string
}

// Parse splits a log line into its parts. Lines that do not carry the
// expected prefix come back with only Message set.
func Parse(line string) Entry {
	fields := strings.SplitN(line, " ", 4)
	if len(fields) < 4 || !looksLikeDate(fields[0]) || !strings.HasSuffix(fields[2], ":") {
		return Entry{Message: line}
	}
	return Entry{
		Timestamp: fields[0] + " " + fields[1],
		Source:    strings.TrimSuffix(fields[2], ":"),
		Message:   fields[3],
	}
}

func looksLikeDate(s string) bool {
	return len(s) == len("2006/01/02") && s[4] == '/' && s[7] == '/'
}

// Styles colour the parts of a highlighted line.
type Styles struct {
	Timestamp lipgloss.Style
	Source    lipgloss.Style
	Message   lipgloss.Style
	Failure   lipgloss.Style
}

// Highlight renders line with s. Messages reporting a failed load use the
// Failure style.
func Highlight(line string, s Styles) string {
	e := Parse(line)
	msg := s.Message
	if strings.Contains(e.Message, "failed") {
		msg = s.Failure
	}
	if e.Timestamp == "" {
		return msg.Render(e.Message)
	}
	return s.Timestamp.Render(e.Timestamp) + " " + s.Source.Render(e.Source) + " " + msg.Render(e.Message)
}
