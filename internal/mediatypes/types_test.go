package mediatypes

import (
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		entry string
		isDir bool
		want  FileType
	}{
		{
			name:  "MP3 audio",
			entry: "CHAT.mp3",
			want:  FileTypeAudio,
		},
		{
			name:  "uppercase extension",
			entry: "KJAH.MP3",
			want:  FileTypeAudio,
		},
		{
			name:  "FLAC with spaces",
			entry: "Radio Los Santos.flac",
			want:  FileTypeAudio,
		},
		{
			name:  "directory wins over extension",
			entry: "album.mp3",
			isDir: true,
			want:  FileTypeFolder,
		},
		{
			name:  "text file",
			entry: "notes.txt",
			want:  FileTypeOther,
		},
		{
			name:  "no extension",
			entry: "README",
			want:  FileTypeOther,
		},
		{
			name:  "dot file",
			entry: ".hidden",
			want:  FileTypeOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.entry, tt.isDir)
			if got != tt.want {
				t.Errorf("Classify(%q, %v) = %v, want %v", tt.entry, tt.isDir, got, tt.want)
			}
		})
	}
}

func TestGetMimeType(t *testing.T) {
	tests := []struct {
		entry string
		want  string
	}{
		{"song.mp3", "audio/mpeg"},
		{"song.FLAC", "audio/flac"},
		{"song.ogg", "audio/ogg"},
		{"song.m4a", "audio/mp4"},
		{"song.xyz", "application/octet-stream"},
		{"song", "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.entry, func(t *testing.T) {
			if got := GetMimeType(tt.entry); got != tt.want {
				t.Errorf("GetMimeType(%q) = %q, want %q", tt.entry, got, tt.want)
			}
		})
	}
}

func TestAudioExtensionsHaveMimeTypes(t *testing.T) {
	for ext := range AudioExtensions {
		if _, ok := MimeTypes[ext]; !ok {
			t.Errorf("audio extension %q has no MIME type", ext)
		}
	}
}

func TestAllFileTypes(t *testing.T) {
	seen := make(map[FileType]bool)
	for _, ft := range AllFileTypes {
		if seen[ft] {
			t.Errorf("duplicate file type %q", ft)
		}
		seen[ft] = true
	}
	if len(seen) != 3 {
		t.Errorf("expected 3 file types, got %d", len(seen))
	}
}
