package guidedoc

import (
	"strconv"
	"strings"
	"unicode"
)

// Heading is one ATX heading of a cleaned markdown document, together with
// the URL-safe anchor a renderer would assign to it.
type Heading struct {
	Level  int    `json:"level"`
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
}

// ExtractHeadings scans cleaned markdown line by line for H1-H6 headings.
// Lines inside fenced code blocks are skipped, so directives like
// "#include" in examples never count as structure. Repeated titles get
// numeric anchor suffixes.
func ExtractHeadings(markdown string) []Heading {
	var headings []Heading
	anchorCounts := make(map[string]int)
	inFence := false

	for _, line := range strings.Split(markdown, "\n") {
		if isFenceDelimiter(line) {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}

		level := headingLevel(line)
		if level == 0 {
			continue
		}
		title := strings.TrimSpace(line[level:])
		if title == "" {
			continue
		}

		anchor := anchorFor(title)
		if n := anchorCounts[anchor]; n > 0 {
			anchorCounts[anchor] = n + 1
			anchor = anchor + "-" + strconv.Itoa(n)
		} else {
			anchorCounts[anchor] = 1
		}

		headings = append(headings, Heading{
			Level:  level,
			Title:  title,
			Anchor: anchor,
		})
	}

	return headings
}

func isFenceDelimiter(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), "```")
}

// headingLevel returns the ATX level of a line, or 0 when the line is not
// a heading. A heading needs 1-6 leading # characters followed by a space.
func headingLevel(line string) int {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n == 0 || n > 6 || n >= len(line) {
		return 0
	}
	if line[n] != ' ' && line[n] != '\t' {
		return 0
	}
	return n
}

// anchorFor lowercases a title and keeps letters and digits, turning word
// breaks into single hyphens.
func anchorFor(title string) string {
	var b strings.Builder
	hyphen := false

	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			hyphen = false
		case unicode.IsSpace(r) || r == '-':
			if b.Len() > 0 && !hyphen {
				b.WriteByte('-')
				hyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
