// Package mediatypes classifies directory entries for display and metrics.
//
// It has no dependencies beyond the standard library so that any package
// can import it without creating import cycles.
//
// Classification never removes an entry from the track list; every entry
// found in the music directory is playable as far as the navigator is
// concerned. The type only decides whether metadata is worth reading and
// which label a track is counted under:
//
//	mediatypes.FileTypeAudio  // Known audio container (mp3, flac, ogg, ...)
//	mediatypes.FileTypeFolder // A directory entry
//	mediatypes.FileTypeOther  // Anything else
//
// Use Classify with the entry name and whether it is a directory:
//
//	switch mediatypes.Classify(name, entry.IsDir()) {
//	case mediatypes.FileTypeAudio:
//	    // read tags
//	}
package mediatypes
