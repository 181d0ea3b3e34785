// Package render turns group structures into aligned display lines.
// Pure formatting; no aggregation logic.
package render

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/my-hanzi/internal/grouping"
)

const (
	// keyWidth is the left-justified column for the group key, shared by
	// all report shapes so columns align across lines.
	keyWidth = 8
	// countWidth right-aligns the member count.
	countWidth = 3
)

// contIndent aligns continuation chunks under the first chunk's start
// column: key column + ": " + count column + " ".
var contIndent = fmt.Sprintf("%*s", keyWidth+2+countWidth+1, "")

// PinyinLines formats pinyin groups as "pinyin  :  42 chars". A fold
// width > 0 folds the member string into chunks of at most fold runes,
// continuation chunks indented under the first. Fold 0 disables
// folding.
func PinyinLines(groups []grouping.PinyinGroup, fold int) []string {
	var lines []string
	for _, g := range groups {
		lines = appendKeyedLine(lines, g.Pinyin, g.Count, g.Chars, fold)
	}
	return lines
}

// ToneLines formats tone groups as "toned-pinyin: chars".
func ToneLines(groups []grouping.ToneGroup) []string {
	lines := make([]string, 0, len(groups))
	for _, g := range groups {
		lines = append(lines, fmt.Sprintf("%s: %s", g.Pinyin, joinChars(g.Chars)))
	}
	return lines
}

// OnsetLines formats onset groups as "onset   : count", using the
// "none" label for the empty onset.
func OnsetLines(groups []grouping.OnsetGroup) []string {
	lines := make([]string, 0, len(groups))
	for _, g := range groups {
		lines = append(lines, fmt.Sprintf("%-*s: %*d", keyWidth, g.Onset.Label(), countWidth, g.Count))
	}
	return lines
}

// appendKeyedLine emits one "key: count chars" line, folded when
// requested.
func appendKeyedLine(lines []string, key string, count int, chars []string, fold int) []string {
	charList := joinChars(chars)
	head := fmt.Sprintf("%-*s: %*d ", keyWidth, key, countWidth, count)

	if fold <= 0 {
		return append(lines, head+charList)
	}

	chunks := foldRunes(charList, fold)
	lines = append(lines, head+chunks[0])
	for _, chunk := range chunks[1:] {
		lines = append(lines, contIndent+chunk)
	}
	return lines
}

// foldRunes splits s into chunks of at most width runes, counting each
// rune as one display unit regardless of encoding width. A width below
// one still advances one rune per chunk so folding always terminates.
// Always returns at least one chunk.
func foldRunes(s string, width int) []string {
	if width < 1 {
		width = 1
	}
	runes := []rune(s)
	if len(runes) <= width {
		return []string{s}
	}

	chunks := make([]string, 0, (len(runes)+width-1)/width)
	for start := 0; start < len(runes); start += width {
		end := start + width
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}

func joinChars(chars []string) string {
	return strings.Join(chars, "")
}
