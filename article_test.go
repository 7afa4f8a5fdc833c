package lawcopy_test

import (
	"testing"

	"github.com/fwojciec/lawcopy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsHeadingStart(t *testing.T) {
	t.Parallel()

	paragraphs := []string{"第1条 正文甲", "续句甲", "📋 第2条 正文乙"}

	assert.True(t, lawcopy.IsHeadingStart(paragraphs, 0))
	assert.False(t, lawcopy.IsHeadingStart(paragraphs, 1))
	assert.True(t, lawcopy.IsHeadingStart(paragraphs, 2), "copy glyph is ignored")
	assert.False(t, lawcopy.IsHeadingStart(paragraphs, 3))
	assert.False(t, lawcopy.IsHeadingStart(paragraphs, -1))
}

func TestExtractSpan(t *testing.T) {
	t.Parallel()

	t.Run("stops before next heading", func(t *testing.T) {
		t.Parallel()

		paragraphs := []string{"第1条 正文甲", "续句甲", "第2条 正文乙", "续句乙"}

		lines, err := lawcopy.ExtractSpan(paragraphs, 0)

		require.NoError(t, err)
		assert.Equal(t, []string{"第1条 正文甲", "续句甲"}, lines)
	})

	t.Run("runs to end of document", func(t *testing.T) {
		t.Parallel()

		paragraphs := []string{"第1条 正文甲", "续句甲", "第2条 正文乙", "续句乙"}

		lines, err := lawcopy.ExtractSpan(paragraphs, 2)

		require.NoError(t, err)
		assert.Equal(t, []string{"第2条 正文乙", "续句乙"}, lines)
	})

	t.Run("terminates on a different heading kind", func(t *testing.T) {
		t.Parallel()

		// A decimal heading ends a dot-numbered article even though the kinds differ.
		paragraphs := []string{"1. 一", "1.1 一点一", "2. 二"}

		lines, err := lawcopy.ExtractSpan(paragraphs, 0)

		require.NoError(t, err)
		assert.Equal(t, []string{"1. 一"}, lines)
	})

	t.Run("decimal heading spans until the next heading", func(t *testing.T) {
		t.Parallel()

		paragraphs := []string{"1. 一", "1.1 一点一", "说明", "2. 二"}

		lines, err := lawcopy.ExtractSpan(paragraphs, 1)

		require.NoError(t, err)
		assert.Equal(t, []string{"1.1 一点一", "说明"}, lines)
	})

	t.Run("last index yields single line", func(t *testing.T) {
		t.Parallel()

		paragraphs := []string{"第1条 正文甲", "续句甲", "第2条 正文乙 ^blk"}

		lines, err := lawcopy.ExtractSpan(paragraphs, 2)

		require.NoError(t, err)
		assert.Equal(t, []string{"第2条 正文乙"}, lines)
	})

	t.Run("keeps empty lines", func(t *testing.T) {
		t.Parallel()

		paragraphs := []string{"第1条 正文", "", "  ", "续句"}

		lines, err := lawcopy.ExtractSpan(paragraphs, 0)

		require.NoError(t, err)
		assert.Equal(t, []string{"第1条 正文", "", "", "续句"}, lines)
	})

	t.Run("cleans every line", func(t *testing.T) {
		t.Parallel()

		paragraphs := []string{"📋第1条 内容 ^abc123", "  续句 ^x-1  ", "第2条"}

		lines, err := lawcopy.ExtractSpan(paragraphs, 0)

		require.NoError(t, err)
		assert.Equal(t, []string{"第1条 内容", "续句"}, lines)
	})

	t.Run("extracts from a non-heading start", func(t *testing.T) {
		t.Parallel()

		paragraphs := []string{"第1条 正文甲", "续句甲", "续句乙", "第2条 正文乙"}

		lines, err := lawcopy.ExtractSpan(paragraphs, 1)

		require.NoError(t, err)
		assert.Equal(t, []string{"续句甲", "续句乙"}, lines)
	})

	t.Run("rejects out of range index", func(t *testing.T) {
		t.Parallel()

		paragraphs := []string{"第1条 正文甲"}

		_, err := lawcopy.ExtractSpan(paragraphs, 1)
		assert.Equal(t, lawcopy.EINVALID, lawcopy.ErrorCode(err))

		_, err = lawcopy.ExtractSpan(paragraphs, -1)
		assert.Equal(t, lawcopy.EINVALID, lawcopy.ErrorCode(err))

		_, err = lawcopy.ExtractSpan(nil, 0)
		assert.Equal(t, lawcopy.EINVALID, lawcopy.ErrorCode(err))
	})

	t.Run("does not modify input", func(t *testing.T) {
		t.Parallel()

		paragraphs := []string{" 第1条 内容 ^abc ", "续句"}

		_, err := lawcopy.ExtractSpan(paragraphs, 0)

		require.NoError(t, err)
		assert.Equal(t, []string{" 第1条 内容 ^abc ", "续句"}, paragraphs)
	})
}

func TestCleanParagraph(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"strips block reference", "第1条 内容 ^abc123", "第1条 内容"},
		{"strips block reference without space", "内容^a_b-C9", "内容"},
		{"strips block reference after no-break space", "第1条 内容\u00a0^abc123", "第1条 内容"},
		{"strips block reference after ideographic space", "第1条 内容\u3000^abc123", "第1条 内容"},
		{"keeps caret in the middle", "2^10 表示", "2^10 表示"},
		{"keeps caret with other characters", "内容 ^abc!", "内容 ^abc!"},
		{"trims whitespace", "  内容\t", "内容"},
		{"strips copy glyph", "📋第1条 内容", "第1条 内容"},
		{"strips copied glyph", "✅ 第1条 内容", "第1条 内容"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, lawcopy.CleanParagraph(tt.raw))
		})
	}
}

func TestFindArticles(t *testing.T) {
	t.Parallel()

	t.Run("returns one article per heading", func(t *testing.T) {
		t.Parallel()

		paragraphs := []string{"前言", "第1条 正文甲", "续句甲", "1、 子项", "第2条 正文乙"}

		articles := lawcopy.FindArticles(paragraphs)

		require.Len(t, articles, 3)
		assert.Equal(t, 1, articles[0].Index)
		assert.Equal(t, lawcopy.HeadingChineseNumbered, articles[0].Kind)
		assert.Equal(t, []string{"第1条 正文甲", "续句甲"}, articles[0].Lines)
		assert.Equal(t, 3, articles[1].Index)
		assert.Equal(t, lawcopy.HeadingCommaNumbered, articles[1].Kind)
		assert.Equal(t, "1、 子项", articles[1].Title())
		assert.Equal(t, 4, articles[2].Index)
		assert.Equal(t, "第2条 正文乙", articles[2].Text())
	})

	t.Run("returns nil without headings", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, lawcopy.FindArticles([]string{"正文", ""}))
	})
}

func TestArticle_Text(t *testing.T) {
	t.Parallel()

	article := &lawcopy.Article{Lines: []string{"第1条 正文", "", "续句"}}

	assert.Equal(t, "第1条 正文\n\n续句", article.Text())
	assert.Equal(t, "第1条 正文", article.Title())
	assert.Empty(t, (&lawcopy.Article{}).Title())
}
