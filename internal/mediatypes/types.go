package mediatypes

import (
	"path/filepath"
	"strings"
)

// FileType represents the kind of a directory entry.
type FileType string

const (
	// FileTypeAudio represents a recognised audio file.
	FileTypeAudio FileType = "audio"
	// FileTypeFolder represents a directory.
	FileTypeFolder FileType = "folder"
	// FileTypeOther represents an unknown file type.
	FileTypeOther FileType = "other"
)

// AllFileTypes lists every FileType, in a stable order, for label
// pre-population.
var AllFileTypes = []FileType{FileTypeAudio, FileTypeFolder, FileTypeOther}

// AudioExtensions maps lowercase file extensions to whether they are audio
// formats the metadata reader understands.
var AudioExtensions = map[string]bool{
	".mp3":  true,
	".flac": true,
	".ogg":  true,
	".oga":  true,
	".m4a":  true,
	".m4b":  true,
	".mp4":  true,
	".aac":  true,
	".wav":  true,
	".dsf":  true,
}

// MimeTypes maps audio extensions to their MIME types.
var MimeTypes = map[string]string{
	".mp3":  "audio/mpeg",
	".flac": "audio/flac",
	".ogg":  "audio/ogg",
	".oga":  "audio/ogg",
	".m4a":  "audio/mp4",
	".m4b":  "audio/mp4",
	".mp4":  "audio/mp4",
	".aac":  "audio/aac",
	".wav":  "audio/wav",
	".dsf":  "audio/dsf",
}

// Classify returns the FileType of an entry name.
func Classify(name string, isDir bool) FileType {
	if isDir {
		return FileTypeFolder
	}
	if AudioExtensions[Ext(name)] {
		return FileTypeAudio
	}
	return FileTypeOther
}

// Ext returns the lowercase extension of name, including the dot.
func Ext(name string) string {
	return strings.ToLower(filepath.Ext(name))
}

// GetMimeType returns the MIME type for an entry name, or
// application/octet-stream when unknown.
func GetMimeType(name string) string {
	if mime, ok := MimeTypes[Ext(name)]; ok {
		return mime
	}
	return "application/octet-stream"
}
