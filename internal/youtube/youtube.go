// Package youtube normalizes the YouTube links editors paste into embed URLs.
package youtube

import (
	"net/url"
	"regexp"
	"strings"
)

const embedBase = "https://www.youtube.com/embed/"

var videoID = regexp.MustCompile(`^[A-Za-z0-9_-]{6,}$`)

// ID extracts the video id from watch, youtu.be, shorts, live and embed links.
func ID(raw string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return "", false
	}

	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	host = strings.TrimPrefix(host, "m.")
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")

	var id string
	switch host {
	case "youtu.be":
		id = segments[0]
	case "youtube.com", "youtube-nocookie.com", "music.youtube.com":
		switch {
		case segments[0] == "watch":
			id = u.Query().Get("v")
		case len(segments) >= 2 && (segments[0] == "embed" || segments[0] == "shorts" || segments[0] == "live" || segments[0] == "v"):
			id = segments[1]
		}
	}

	if !videoID.MatchString(id) {
		return "", false
	}
	return id, true
}

// EmbedURL returns the embeddable URL for a YouTube link, or raw unchanged
// when it is not a recognizable YouTube link.
func EmbedURL(raw string) string {
	id, ok := ID(raw)
	if !ok {
		return raw
	}
	return embedBase + id
}
