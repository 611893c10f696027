package model

import (
	"path"
	"strings"
)

// DefaultMediaType is served for files with an unrecognized extension.
const DefaultMediaType = "application/octet-stream"

// audioTypes is the closed extension-to-media-type table for the media root.
var audioTypes = map[string]string{
	"mp3":  "audio/mpeg",
	"m4a":  "audio/mp4",
	"ogg":  "audio/ogg",
	"opus": "audio/ogg",
	"flac": "audio/flac",
	"wav":  "audio/wav",
}

// MediaType returns the media type for a file name based on its extension.
// Lookup is case-insensitive; unknown extensions map to DefaultMediaType.
func MediaType(name string) string {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(name), "."))
	if mt, ok := audioTypes[ext]; ok {
		return mt
	}
	return DefaultMediaType
}
