// Package assets embeds the default word lists shipped with the binary.
package assets

import (
	"bufio"
	"embed"
	"io"
	"strings"
)

//go:embed allowed.txt answers.txt
var FS embed.FS

// ReadLines returns the non-blank lines of r, trimmed, skipping "#" comments.
func ReadLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

func readFile(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}

// AnswersList returns the embedded daily answers.
func AnswersList() ([]string, error) {
	return readFile("answers.txt")
}

// AllowedList returns the embedded guess-only words.
func AllowedList() ([]string, error) {
	return readFile("allowed.txt")
}
