package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/my-hanzi/internal/domain"
	"github.com/heartmarshall/my-hanzi/internal/grouping"
)

// hanziRun builds a member list of n distinct CJK characters.
func hanziRun(n int) []string {
	chars := make([]string, n)
	for i := 0; i < n; i++ {
		chars[i] = string(rune(0x4e00 + i))
	}
	return chars
}

func TestPinyinLines_NoFold(t *testing.T) {
	t.Parallel()

	groups := []grouping.PinyinGroup{
		{Pinyin: "ji", Count: 2, Chars: []string{"机", "计"}},
		{Pinyin: "ma", Count: 1, Chars: []string{"马"}},
	}

	lines := PinyinLines(groups, 0)
	require.Len(t, lines, 2)
	assert.Equal(t, "ji      :   2 机计", lines[0])
	assert.Equal(t, "ma      :   1 马", lines[1])
}

func TestPinyinLines_Alignment(t *testing.T) {
	t.Parallel()

	groups := []grouping.PinyinGroup{
		{Pinyin: "e", Count: 1, Chars: []string{"鹅"}},
		{Pinyin: "zhuang", Count: 1, Chars: []string{"装"}},
	}

	lines := PinyinLines(groups, 0)
	require.Len(t, lines, 2)
	// Keys occupy a shared fixed-width column, so the separators align.
	assert.Equal(t, strings.Index(lines[0], ":"), strings.Index(lines[1], ":"))
}

func TestPinyinLines_Fold(t *testing.T) {
	t.Parallel()

	const fold = 50
	chars := hanziRun(60)
	groups := []grouping.PinyinGroup{{Pinyin: "yi", Count: len(chars), Chars: chars}}

	lines := PinyinLines(groups, fold)
	require.GreaterOrEqual(t, len(lines), 2, "60 characters at fold 50 must span at least 2 lines")

	head := "yi      :  60 "
	require.True(t, strings.HasPrefix(lines[0], head))

	var rebuilt strings.Builder
	rebuilt.WriteString(strings.TrimPrefix(lines[0], head))
	for _, line := range lines[1:] {
		require.True(t, strings.HasPrefix(line, contIndent), "continuation lines are indented")
		rebuilt.WriteString(strings.TrimPrefix(line, contIndent))
	}

	// Concatenating the folded chunks reconstructs the member string.
	assert.Equal(t, strings.Join(chars, ""), rebuilt.String())

	// No chunk exceeds the fold width, counting runes not bytes.
	for i, line := range lines {
		content := strings.TrimPrefix(strings.TrimPrefix(line, head), contIndent)
		assert.LessOrEqual(t, len([]rune(content)), fold, "line %d", i)
	}
}

func TestPinyinLines_FoldExactWidth(t *testing.T) {
	t.Parallel()

	chars := hanziRun(50)
	groups := []grouping.PinyinGroup{{Pinyin: "yi", Count: 50, Chars: chars}}

	// Exactly at the fold width: everything fits on one line.
	lines := PinyinLines(groups, 50)
	assert.Len(t, lines, 1)
}

func TestFoldRunes_TinyWidth(t *testing.T) {
	t.Parallel()

	// A width below one display character must still make progress.
	chunks := foldRunes("中文字", 0)
	assert.Equal(t, []string{"中", "文", "字"}, chunks)
}

func TestToneLines(t *testing.T) {
	t.Parallel()

	groups := []grouping.ToneGroup{
		{Tone: 1, Pinyin: "jī", Chars: []string{"机"}},
		{Tone: 4, Pinyin: "jì", Chars: []string{"计", "记"}},
	}

	lines := ToneLines(groups)
	require.Len(t, lines, 2)
	assert.Equal(t, "jī: 机", lines[0])
	assert.Equal(t, "jì: 计记", lines[1])
}

func TestOnsetLines(t *testing.T) {
	t.Parallel()

	groups := []grouping.OnsetGroup{
		{Onset: domain.OnsetJ, Count: 150},
		{Onset: domain.OnsetZh, Count: 90},
		{Onset: domain.OnsetNone, Count: 80},
	}

	lines := OnsetLines(groups)
	require.Len(t, lines, 3)
	assert.Equal(t, "j       : 150", lines[0])
	assert.Equal(t, "zh      :  90", lines[1])
	assert.Equal(t, "none    :  80", lines[2])
}

func TestLines_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, PinyinLines(nil, 0))
	assert.Empty(t, ToneLines(nil))
	assert.Empty(t, OnsetLines(nil))
}
