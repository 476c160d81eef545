package note

// Title derives a note title from its content: the first 30 characters, with "..." appended when
// the content is longer than that. Characters are unicode code points.
func Title(content string) string {
	runes := []rune(content)
	if len(runes) <= titleLength {
		return content
	}
	return string(runes[:titleLength]) + "..."
}
