// Package media classifies input files into audio and video by extension.
package media

import (
	"path/filepath"
	"strings"
)

// Kind is the inferred media kind of an input file.
type Kind string

const (
	KindAudio Kind = "audio"
	KindVideo Kind = "video"
)

// videoExtensions is the container allow-list for the extraction stage.
// Classification is by extension only, never by content sniffing.
var videoExtensions = map[string]struct{}{
	".mp4": {},
	".mkv": {},
	".avi": {},
}

// Classify infers the media kind from the file extension. Anything that
// is not a recognized video container is treated as audio, including
// unknown extensions; the recognition backend is the authority on
// whether it can decode the input.
func Classify(path string) Kind {
	if IsVideo(path) {
		return KindVideo
	}
	return KindAudio
}

// IsVideo reports whether the path carries a recognized video container
// extension (case-insensitive).
func IsVideo(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	_, ok := videoExtensions[ext]
	return ok
}
