package v1

import "github.com/rwcunningham/MandarinLanguageInstructor/internal/core/domain"

// DictEntry is a precomputed resolution for a known piece of text.
type DictEntry struct {
	Translation string
	Pinyin      string
	Granularity domain.Granularity
}

// Dictionary is a read-only table of known-good resolutions that bypasses
// the network path entirely. Matching is exact: case-sensitive,
// whitespace-sensitive, no segmentation — a sentence-level key must be
// stored verbatim to be found. Built once at startup, so no locking.
type Dictionary struct {
	entries map[string]DictEntry
}

// NewDictionary builds the built-in dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{entries: map[string]DictEntry{
		"你好":        {Translation: "hello", Pinyin: "nǐ hǎo", Granularity: domain.GranularityWord},
		"今天":        {Translation: "today", Pinyin: "jīn tiān", Granularity: domain.GranularityWord},
		"公园":        {Translation: "park", Pinyin: "gōng yuán", Granularity: domain.GranularityWord},
		"在":         {Translation: "to be at/in", Pinyin: "zài", Granularity: domain.GranularityCharacter},
		"我":         {Translation: "I; me", Pinyin: "wǒ", Granularity: domain.GranularityCharacter},
		"我们":        {Translation: "we", Pinyin: "wǒ men", Granularity: domain.GranularityWord},
		"猫":         {Translation: "cat", Pinyin: "māo", Granularity: domain.GranularityCharacter},
		"朋友":        {Translation: "friend", Pinyin: "péng you", Granularity: domain.GranularityWord},
		"我们一起喝热茶。": {Translation: "We drink hot tea together.", Pinyin: "wǒ men yì qǐ hē rè chá", Granularity: domain.GranularitySentence},
	}}
}

// Lookup returns the entry for the exact text, if any.
func (d *Dictionary) Lookup(text string) (DictEntry, bool) {
	entry, ok := d.entries[text]
	return entry, ok
}
