package domain

// Request and response bodies shared between the Web and Logic layers.
// Field validation beyond JSON shape happens in the Logic layer so the
// rules (trimming, password policy) are testable without HTTP.

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is returned by both register and login.
type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// LookupRequest is the body of POST /api/lookup. Granularity and Pinyin are
// optional caller hints; a dictionary hit overrides both.
type LookupRequest struct {
	Text        string `json:"text"`
	Granularity string `json:"granularity,omitempty"`
	Pinyin      string `json:"pinyin,omitempty"`
}

// LookupResult is the resolved form of a text fragment. It is transient:
// saving one as a flashcard is a separate, caller-initiated request.
type LookupResult struct {
	Text        string      `json:"text"`
	Granularity Granularity `json:"granularity"`
	Translation string      `json:"translation"`
	Pinyin      string      `json:"pinyin"`
}

// Segment is one hanzi/pinyin/english unit of a story.
type Segment struct {
	Hanzi   string `json:"hanzi"`
	Pinyin  string `json:"pinyin"`
	English string `json:"english"`
}

// StorySummary is the listing form of a story, without its segments.
type StorySummary struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Level string `json:"level"`
}

// Story is the full reading form, segments included.
type Story struct {
	ID       int       `json:"id"`
	Title    string    `json:"title"`
	Level    string    `json:"level"`
	Segments []Segment `json:"segments"`
}

// CreateFlashcardRequest is the body of POST /api/flashcards.
type CreateFlashcardRequest struct {
	SourceText  string `json:"source_text"`
	Translation string `json:"translation"`
	Granularity string `json:"granularity"`
	Pinyin      string `json:"pinyin,omitempty"`
}

// Flashcard is the API form of a saved card.
type Flashcard struct {
	ID          int         `json:"id"`
	SourceText  string      `json:"source_text"`
	Pinyin      string      `json:"pinyin"`
	Translation string      `json:"translation"`
	Granularity Granularity `json:"granularity"`
}
