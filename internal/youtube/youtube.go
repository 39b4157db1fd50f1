// Package youtube pulls video IDs out of the URL shapes people paste into
// spreadsheets.
package youtube

import "regexp"

var (
	// primaryPattern is loose on purpose: any "v=" or "/" followed by an
	// 11-character token. It must run first because watch?v= URLs carry none
	// of the markers fallbackPattern looks for.
	primaryPattern  = regexp.MustCompile(`(?:v=|/)([0-9A-Za-z_-]{11})`)
	fallbackPattern = regexp.MustCompile(`(?:embed/|v/|youtu\.be/)([0-9A-Za-z_-]{11})`)
)

// ExtractVideoID returns the 11-character video ID embedded in url.
func ExtractVideoID(url string) (string, bool) {
	if url == "" {
		return "", false
	}
	if m := primaryPattern.FindStringSubmatch(url); m != nil {
		return m[1], true
	}
	if m := fallbackPattern.FindStringSubmatch(url); m != nil {
		return m[1], true
	}
	return "", false
}

// WatchURL builds the canonical watch URL for a video ID.
func WatchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}
