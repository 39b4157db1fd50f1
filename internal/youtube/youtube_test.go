package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		wantID string
		wantOK bool
	}{
		{"short link", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"embed url", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"watch url with extra params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ", true},
		{"legacy v path", "https://www.youtube.com/v/dQw4w9WgXcQ?version=3", "dQw4w9WgXcQ", true},
		{"shorts", "https://youtube.com/shorts/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"no scheme", "youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"id with dash and underscore", "https://youtu.be/a-b_c-d_e-f", "a-b_c-d_e-f", true},
		{"not a url", "not a url", "", false},
		{"empty", "", "", false},
		{"token too short", "https://youtu.be/abc", "", false},
		{"template placeholder", "https://www.youtube.com/watch?v=EXAMPLE", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ExtractVideoID(tt.url)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestWatchURL(t *testing.T) {
	url := WatchURL("dQw4w9WgXcQ")
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", url)

	id, ok := ExtractVideoID(url)
	assert.True(t, ok)
	assert.Equal(t, "dQw4w9WgXcQ", id)
}
