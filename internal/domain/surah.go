package domain

// Surah is a chapter of the Quran. Its ID is the canonical chapter number.
type Surah struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	ArabicName      *string `json:"arabic_name"`
	EnglishName     *string `json:"english_name"`
	TotalVerses     *int    `json:"total_verses"`
	RevelationPlace *string `json:"revelation_place"`
}

// ChapterReference maps surah number to display name. It is loaded once per
// import and treated as an immutable snapshot.
type ChapterReference map[int]string

// Name returns the display name for a surah number.
func (c ChapterReference) Name(no int) (string, bool) {
	name, ok := c[no]
	return name, ok
}
