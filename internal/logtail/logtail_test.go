package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRead(t *testing.T) {
	// Create a temporary log file
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	// Write 10 lines of content
	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{
			name:     "read all (0)",
			maxLines: 0,
			expected: expectedAll,
		},
		{
			name:     "read all (negative)",
			maxLines: -1,
			expected: expectedAll,
		},
		{
			name:     "read partial (5)",
			maxLines: 5,
			expected: expectedAll[5:],
		},
		{
			name:     "read exactly all (10)",
			maxLines: 10,
			expected: expectedAll,
		},
		{
			name:     "read more than exists (20)",
			maxLines: 20,
			expected: expectedAll,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "nope.log"), 10)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != nil {
		t.Fatalf("Read() = %v, want nil", got)
	}
}

func TestForAttempt(t *testing.T) {
	lines := []string{
		"2026/10/18 10:00:00 loader.go:83: load a1: searching x",
		"2026/10/18 10:00:01 loader.go:83: load b2: searching y",
		"2026/10/18 10:00:02 loader.go:112: load a1: accepted 30 distinct images from 50 results",
	}

	got := ForAttempt(lines, "a1")
	want := []string{lines[0], lines[2]}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ForAttempt() = %v, want %v", got, want)
	}
	if got := ForAttempt(lines, " "); !reflect.DeepEqual(got, lines) {
		t.Fatalf("ForAttempt(blank) = %v, want all lines", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Entry
	}{
		{
			name:  "standard line",
			input: "2026/10/18 10:00:00 loader.go:83: load a1: searching x",
			want:  Entry{Timestamp: "2026/10/18 10:00:00", Source: "loader.go:83", Message: "load a1: searching x"},
		},
		{
			name:  "plain text",
			input: "panic: something",
			want:  Entry{Message: "panic: something"},
		},
		{
			name:  "empty",
			input: "",
			want:  Entry{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.input); got != tt.want {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestHighlight_KeepsText(t *testing.T) {
	s := Styles{
		Timestamp: lipgloss.NewStyle(),
		Source:    lipgloss.NewStyle(),
		Message:   lipgloss.NewStyle(),
		Failure:   lipgloss.NewStyle(),
	}
	line := "2026/10/18 10:00:00 loader.go:86: load a1: failed (http 503): boom"
	got := Highlight(line, s)
	for _, part := range []string{"2026/10/18 10:00:00", "loader.go:86", "failed (http 503): boom"} {
		if !strings.Contains(got, part) {
			t.Errorf("Highlight() = %q, want it to contain %q", got, part)
		}
	}
}
