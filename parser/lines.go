package parser

import "strings"

// Line represents source line, Start and End are byte offsets, End excludes the line terminator
type Line struct {
	Start   int
	End     int
	Content string
}

// Lines represents source lines
type Lines []*Line

// NewLines splits source into lines
func NewLines(source string) Lines {
	var result Lines
	start := 0
	for {
		index := strings.IndexByte(source[start:], '\n')
		if index == -1 {
			result = append(result, newLine(source, start, len(source)))
			return result
		}
		result = append(result, newLine(source, start, start+index))
		start += index + 1
	}
}

func newLine(source string, start, end int) *Line {
	content := source[start:end]
	trimmed := strings.TrimSuffix(content, "\r")
	return &Line{Start: start, End: start + len(trimmed), Content: trimmed}
}

// Index returns 0-based index of the line containing offset
func (l Lines) Index(offset int) int {
	for i, line := range l {
		if offset <= line.End {
			return i
		}
		if i+1 < len(l) && offset < l[i+1].Start {
			return i
		}
	}
	return len(l) - 1
}
