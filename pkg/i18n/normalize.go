package i18n

import "strings"

// Normalize reflows formatted text so that catalog entries can be wrapped by
// hand without the wrapping leaking into rendered output. It applies, in order:
//
//  1. CollapseSpaces
//  2. JoinLines
//  3. NormalizeParagraphs
//
// A "word" character below is any byte other than ' ', '\r' and '\n'.
// JoinLines only touches single line breaks, so blank-line separators survive
// it and are left to NormalizeParagraphs.
func Normalize(text string) string {
	return NormalizeParagraphs(JoinLines(CollapseSpaces(text)))
}

func isWord(b byte) bool {
	return b != ' ' && b != '\r' && b != '\n'
}

func isLineBreak(b byte) bool {
	return b == '\r' || b == '\n'
}

// CollapseSpaces reduces every run of two or more spaces that directly follows
// a word character to a single space.
func CollapseSpaces(text string) string {
	if !strings.Contains(text, "  ") {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); {
		if text[i] == ' ' && i > 0 && isWord(text[i-1]) {
			j := i
			for j < len(text) && text[j] == ' ' {
				j++
			}
			b.WriteByte(' ')
			i = j
			continue
		}
		b.WriteByte(text[i])
		i++
	}

	return b.String()
}

// JoinLines replaces a single line break between two word characters with a
// space.
func JoinLines(text string) string {
	if !strings.ContainsAny(text, "\r\n") {
		return text
	}

	buf := []byte(text)
	for i := 1; i < len(text)-1; i++ {
		if isLineBreak(text[i]) && isWord(text[i-1]) && isWord(text[i+1]) {
			buf[i] = ' '
		}
	}

	return string(buf)
}

// NormalizeParagraphs collapses a run of two or more line breaks between two
// word characters into exactly one blank line.
func NormalizeParagraphs(text string) string {
	if !strings.ContainsAny(text, "\r\n") {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); {
		if !isLineBreak(text[i]) {
			b.WriteByte(text[i])
			i++
			continue
		}

		j := i
		for j < len(text) && isLineBreak(text[j]) {
			j++
		}

		if j-i >= 2 && i > 0 && isWord(text[i-1]) && j < len(text) && isWord(text[j]) {
			b.WriteString("\n\n")
		} else {
			b.WriteString(text[i:j])
		}
		i = j
	}

	return b.String()
}
