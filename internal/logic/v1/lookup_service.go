package v1

import (
	"context"
	"fmt"
	"strings"

	"github.com/rwcunningham/MandarinLanguageInstructor/internal/core/domain"
	"github.com/rwcunningham/MandarinLanguageInstructor/internal/logging"
	"github.com/rwcunningham/MandarinLanguageInstructor/middleware"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// TranslationUnavailable is returned in place of a translation when the
// external provider fails. It is a fixed, recognizable placeholder so the
// caller can tell "unavailable" apart from a genuine empty translation.
const TranslationUnavailable = "Translation unavailable"

// LookupService resolves a text fragment to pinyin, translation, and
// granularity. Resolution order: exact dictionary hit, then caller hints,
// then heuristic classification plus a single external translation attempt.
type LookupService struct {
	dict       *Dictionary
	translator domain.Translator
}

// NewLookupService creates a new LookupService.
func NewLookupService(dict *Dictionary, translator domain.Translator) *LookupService {
	return &LookupService{
		dict:       dict,
		translator: translator,
	}
}

// Resolve assembles a LookupResult for the request.
//
// Only empty text fails. A provider failure is absorbed: the caller still
// gets a 2xx-shaped result carrying the TranslationUnavailable sentinel,
// since granularity (and possibly dictionary data) remains useful on its own.
func (s *LookupService) Resolve(ctx context.Context, req domain.LookupRequest) (*domain.LookupResult, error) {
	ctx, span := middleware.StartSpan(ctx, "lookup.resolve", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	text := strings.TrimSpace(req.Text)
	if text == "" {
		span.SetAttributes(attribute.Bool("request.valid", false))
		return nil, fmt.Errorf("resolve lookup: %w", ErrEmptyText)
	}

	// Dictionary data always wins over caller hints and the heuristic.
	if entry, ok := s.dict.Lookup(text); ok {
		span.SetAttributes(attribute.String("lookup.source", "dictionary"))
		return &domain.LookupResult{
			Text:        text,
			Granularity: entry.Granularity,
			Translation: entry.Translation,
			Pinyin:      entry.Pinyin,
		}, nil
	}

	granularity, ok := domain.ParseGranularity(req.Granularity)
	if !ok {
		granularity = ClassifyGranularity(text)
	}

	translation, ok := s.translator.Translate(ctx, text)
	if !ok {
		span.SetAttributes(attribute.Bool("lookup.translator_ok", false))
		logging.FromContext(ctx).Warn().Str("text", text).Msg("Translation provider unavailable, using sentinel")
		translation = TranslationUnavailable
	}

	span.SetAttributes(attribute.String("lookup.source", "translator"))
	return &domain.LookupResult{
		Text:        text,
		Granularity: granularity,
		Translation: translation,
		Pinyin:      req.Pinyin,
	}, nil
}
