package config

import (
	"path/filepath"
	"testing"

	"pgregory.net/rapid"
)

func genPathString(t *rapid.T, label string) string {
	segs := rapid.SliceOfN(
		rapid.StringMatching(`[a-zA-Z0-9_.-]{1,12}`), 1, 4,
	).Draw(t, label)
	return "/" + filepath.Join(segs...)
}

// TestProperty_ConfigRoundTrip verifies that every valid Config survives a
// save/load cycle with all fields preserved.
func TestProperty_ConfigRoundTrip(t *testing.T) {
	formats := []NotesFormat{FormatObsidian, FormatLogseq, FormatPlain}

	rapid.Check(t, func(rt *rapid.T) {
		cfg := &Config{
			TILPath:     genPathString(rt, "tilPath"),
			ArchiveDir:  rapid.StringMatching(`[a-z][a-z0-9_-]{0,15}`).Draw(rt, "archiveDir"),
			NotesFormat: rapid.SampledFrom(formats).Draw(rt, "notesFormat"),
		}
		if rapid.Bool().Draw(rt, "hasNotesPath") {
			cfg.NotesPath = genPathString(rt, "notesPath")
		}

		path := filepath.Join(t.TempDir(), "config.toml")
		if err := cfg.saveTo(path); err != nil {
			rt.Fatalf("saveTo: %v", err)
		}
		loaded, err := loadFrom(path)
		if err != nil {
			rt.Fatalf("loadFrom: %v", err)
		}
		if *loaded != *cfg {
			rt.Fatalf("round trip mismatch: got %+v, want %+v", loaded, cfg)
		}
	})
}
