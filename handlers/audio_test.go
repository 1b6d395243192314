// Copyright (c) 2025 Oleh Kravets.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/okravets/advent-quiz/models"
	"github.com/okravets/advent-quiz/testutil"
)

func TestListTracks(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"jingle.mp3", "carol of the bells.ogg", "notes.txt", "sleigh.M4A"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("Failed to create media file: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "covers"), 0o755); err != nil {
		t.Fatalf("Failed to create subdirectory: %v", err)
	}

	cfg := testutil.GetTestConfig()
	cfg.MediaDir = dir
	handler := NewAudioHandler(cfg)

	w := httptest.NewRecorder()
	handler.ListTracks(w, testutil.MakeRequest("GET", "/api/audio", nil, nil))
	testutil.AssertStatus(t, w, 200)

	var resp models.AudioResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Tracks) != 3 {
		t.Fatalf("Expected 3 playable tracks, got %d: %+v", len(resp.Tracks), resp.Tracks)
	}

	byFile := map[string]models.AudioTrack{}
	for _, tr := range resp.Tracks {
		byFile[tr.File] = tr
	}
	if _, ok := byFile["notes.txt"]; ok {
		t.Error("Non-audio file must be filtered out")
	}
	if _, ok := byFile["sleigh.M4A"]; !ok {
		t.Error("Extension match should be case-insensitive")
	}
	if tr := byFile["carol of the bells.ogg"]; tr.URL != "/audio/carol%20of%20the%20bells.ogg" {
		t.Errorf("Expected escaped URL, got %q", tr.URL)
	}
}

func TestListTracks_MissingDir(t *testing.T) {
	cfg := testutil.GetTestConfig()
	cfg.MediaDir = filepath.Join(t.TempDir(), "does-not-exist")
	handler := NewAudioHandler(cfg)

	w := httptest.NewRecorder()
	handler.ListTracks(w, testutil.MakeRequest("GET", "/api/audio", nil, nil))
	testutil.AssertStatus(t, w, 200)

	var resp models.AudioResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Tracks) != 0 {
		t.Errorf("Expected empty playlist for missing directory, got %d tracks", len(resp.Tracks))
	}
}
