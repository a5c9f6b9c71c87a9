package catalog

import "regexp"

var (
	youtubeURLPattern = regexp.MustCompile(`^(https?://)?(www\.)?(youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)[\w-]+`)

	// Handles youtu.be, /watch, /embed, /v and trailing parameters
	// like ?si=... and &feature=...
	youtubeIDPattern = regexp.MustCompile(`^.*(youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*).*`)
)

// IsValidYouTubeURL reports whether the URL points at a known video-hosting
// pattern. The empty string is not valid.
func IsValidYouTubeURL(url string) bool {
	if url == "" {
		return false
	}
	return youtubeURLPattern.MatchString(url)
}

// YouTubeVideoID extracts the 11-character video id from a YouTube URL,
// returning "" when none is found.
func YouTubeVideoID(url string) string {
	if url == "" {
		return ""
	}
	match := youtubeIDPattern.FindStringSubmatch(url)
	if match == nil || len(match[2]) != 11 {
		return ""
	}
	return match[2]
}

// YouTubeEmbedURL builds the privacy-enhanced embed URL for a video link,
// returning "" when the link carries no extractable id.
func YouTubeEmbedURL(url string) string {
	id := YouTubeVideoID(url)
	if id == "" {
		return ""
	}
	return "https://www.youtube-nocookie.com/embed/" + id + "?rel=0"
}
