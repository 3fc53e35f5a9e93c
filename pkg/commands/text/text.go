// Package text formats the help text of the bet CLI commands.
package text

import (
	"strings"
)

// Indentation is the indentation applied to each example line.
const Indentation = `  `

// LongDesc trims a command's long description and removes the indentation shared by its
// lines. Deeper indentation, such as a nested list, is kept relative to the text.
func LongDesc(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}

	lines := strings.Split(s, "\n")

	// The first line lost its indentation to TrimSpace, so measure the others.
	margin := -1
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if margin < 0 || indent < margin {
			margin = indent
		}
	}

	for i, line := range lines {
		switch {
		case i == 0:
		case strings.TrimSpace(line) == "":
			lines[i] = ""
		default:
			lines[i] = line[margin:]
		}
	}

	return strings.Join(lines, "\n")
}

// Examples trims a command's examples and indents every line.
func Examples(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}

	lines := make([]string, 0, strings.Count(s, "\n")+1)
	for line := range strings.SplitSeq(s, "\n") {
		lines = append(lines, Indentation+strings.TrimSpace(line))
	}

	return strings.Join(lines, "\n")
}
