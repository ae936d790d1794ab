package v1

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rwcunningham/MandarinLanguageInstructor/internal/core/domain"
)

func failingTranslator() domain.Translator {
	return translatorFunc(func(context.Context, string) (string, bool) { return "", false })
}

func fixedTranslator(result string) domain.Translator {
	return translatorFunc(func(context.Context, string) (string, bool) { return result, true })
}

func TestLookupService_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("empty text rejected", func(t *testing.T) {
		svc := NewLookupService(NewDictionary(), failingTranslator())

		_, err := svc.Resolve(ctx, domain.LookupRequest{Text: ""})
		require.ErrorIs(t, err, ErrEmptyText)

		_, err = svc.Resolve(ctx, domain.LookupRequest{Text: "   "})
		require.ErrorIs(t, err, ErrEmptyText)
	})

	t.Run("dictionary hit returns entry verbatim", func(t *testing.T) {
		svc := NewLookupService(NewDictionary(), failingTranslator())

		result, err := svc.Resolve(ctx, domain.LookupRequest{Text: "你好"})
		require.NoError(t, err)
		assert.Equal(t, &domain.LookupResult{
			Text:        "你好",
			Granularity: domain.GranularityWord,
			Translation: "hello",
			Pinyin:      "nǐ hǎo",
		}, result)
	})

	t.Run("dictionary wins over caller hints", func(t *testing.T) {
		svc := NewLookupService(NewDictionary(), fixedTranslator("ignored"))

		result, err := svc.Resolve(ctx, domain.LookupRequest{
			Text:        "你好",
			Granularity: "sentence",
			Pinyin:      "wrong",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.GranularityWord, result.Granularity)
		assert.Equal(t, "hello", result.Translation)
		assert.Equal(t, "nǐ hǎo", result.Pinyin)
	})

	t.Run("text is trimmed before matching", func(t *testing.T) {
		svc := NewLookupService(NewDictionary(), failingTranslator())

		result, err := svc.Resolve(ctx, domain.LookupRequest{Text: "  你好  "})
		require.NoError(t, err)
		assert.Equal(t, "你好", result.Text)
		assert.Equal(t, "hello", result.Translation)
	})

	t.Run("miss goes through the translator", func(t *testing.T) {
		svc := NewLookupService(NewDictionary(), fixedTranslator("boat"))

		result, err := svc.Resolve(ctx, domain.LookupRequest{Text: "艇"})
		require.NoError(t, err)
		assert.Equal(t, domain.GranularityCharacter, result.Granularity)
		assert.Equal(t, "boat", result.Translation)
		assert.Equal(t, "", result.Pinyin)
	})

	t.Run("translator failure degrades to sentinel", func(t *testing.T) {
		svc := NewLookupService(NewDictionary(), failingTranslator())

		result, err := svc.Resolve(ctx, domain.LookupRequest{Text: "艇"})
		require.NoError(t, err)
		assert.Equal(t, TranslationUnavailable, result.Translation)
		assert.NotEmpty(t, result.Translation)
		assert.Equal(t, domain.GranularityCharacter, result.Granularity)
	})

	t.Run("caller granularity used on a miss", func(t *testing.T) {
		svc := NewLookupService(NewDictionary(), failingTranslator())

		result, err := svc.Resolve(ctx, domain.LookupRequest{Text: "艇", Granularity: "phrase"})
		require.NoError(t, err)
		assert.Equal(t, domain.GranularityPhrase, result.Granularity)
	})

	t.Run("unknown caller granularity falls back to classifier", func(t *testing.T) {
		svc := NewLookupService(NewDictionary(), failingTranslator())

		result, err := svc.Resolve(ctx, domain.LookupRequest{Text: "艇", Granularity: "paragraph"})
		require.NoError(t, err)
		assert.Equal(t, domain.GranularityCharacter, result.Granularity)
	})

	t.Run("caller pinyin passed through on a miss", func(t *testing.T) {
		svc := NewLookupService(NewDictionary(), fixedTranslator("boat"))

		result, err := svc.Resolve(ctx, domain.LookupRequest{Text: "艇", Pinyin: "tǐng"})
		require.NoError(t, err)
		assert.Equal(t, "tǐng", result.Pinyin)
	})

	t.Run("repeated dictionary hits are identical", func(t *testing.T) {
		svc := NewLookupService(NewDictionary(), failingTranslator())

		first, err := svc.Resolve(ctx, domain.LookupRequest{Text: "我们一起喝热茶。"})
		require.NoError(t, err)
		second, err := svc.Resolve(ctx, domain.LookupRequest{Text: "我们一起喝热茶。"})
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
