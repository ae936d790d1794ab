package v1

import "github.com/rwcunningham/MandarinLanguageInstructor/internal/core/domain"

// seedStories is the sample reading material inserted on first startup.
var seedStories = []domain.Story{
	{
		Title: "公园里的早晨",
		Level: "beginner",
		Segments: []domain.Segment{
			{Hanzi: "今天", Pinyin: "jīn tiān", English: "today"},
			{Hanzi: "早上", Pinyin: "zǎo shang", English: "morning"},
			{Hanzi: "，", Pinyin: "", English: ","},
			{Hanzi: "我", Pinyin: "wǒ", English: "I"},
			{Hanzi: "在", Pinyin: "zài", English: "am at"},
			{Hanzi: "公园", Pinyin: "gōng yuán", English: "park"},
			{Hanzi: "散步", Pinyin: "sàn bù", English: "walk"},
			{Hanzi: "。", Pinyin: "", English: "."},
			{Hanzi: "我", Pinyin: "wǒ", English: "I"},
			{Hanzi: "看到", Pinyin: "kàn dào", English: "see"},
			{Hanzi: "一只", Pinyin: "yì zhī", English: "one (animal)"},
			{Hanzi: "猫", Pinyin: "māo", English: "cat"},
			{Hanzi: "。", Pinyin: "", English: "."},
		},
	},
	{
		Title: "一起喝茶",
		Level: "intermediate",
		Segments: []domain.Segment{
			{Hanzi: "下午", Pinyin: "xià wǔ", English: "afternoon"},
			{Hanzi: "，", Pinyin: "", English: ","},
			{Hanzi: "我", Pinyin: "wǒ", English: "I"},
			{Hanzi: "和", Pinyin: "hé", English: "and"},
			{Hanzi: "朋友", Pinyin: "péng you", English: "friend"},
			{Hanzi: "在", Pinyin: "zài", English: "at"},
			{Hanzi: "小店", Pinyin: "xiǎo diàn", English: "small shop"},
			{Hanzi: "聊天", Pinyin: "liáo tiān", English: "chat"},
			{Hanzi: "。", Pinyin: "", English: "."},
			{Hanzi: "我们", Pinyin: "wǒ men", English: "we"},
			{Hanzi: "一起", Pinyin: "yì qǐ", English: "together"},
			{Hanzi: "喝", Pinyin: "hē", English: "drink"},
			{Hanzi: "热茶", Pinyin: "rè chá", English: "hot tea"},
			{Hanzi: "。", Pinyin: "", English: "."},
		},
	},
}
