// Copyright (c) 2025 Oleh Kravets.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/okravets/advent-quiz/cliparse"
	"github.com/okravets/advent-quiz/middleware"
	"github.com/okravets/advent-quiz/models"
)

type AudioHandler struct {
	cfg cliparse.Config
}

func NewAudioHandler(cfg cliparse.Config) *AudioHandler {
	return &AudioHandler{cfg: cfg}
}

// ListTracks handles GET /api/audio
// Scans the media directory for playable files. A missing or unreadable
// directory yields an empty playlist, never an error.
func (h *AudioHandler) ListTracks(w http.ResponseWriter, r *http.Request) {
	tracks := []models.AudioTrack{}

	entries, err := os.ReadDir(h.cfg.MediaDir)
	if err != nil {
		middleware.JSONResponse(w, http.StatusOK, models.AudioResponse{Tracks: tracks})
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		switch strings.ToLower(filepath.Ext(name)) {
		case ".mp3", ".ogg", ".m4a", ".wav":
			tracks = append(tracks, models.AudioTrack{
				File:  name,
				URL:   "/audio/" + url.PathEscape(name),
				Title: name,
			})
		}
	}

	middleware.JSONResponse(w, http.StatusOK, models.AudioResponse{Tracks: tracks})
}
