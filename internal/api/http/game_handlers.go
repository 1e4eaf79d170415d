package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/quizdeck/quizdeck/internal/extract"
	"github.com/quizdeck/quizdeck/internal/game"
	"github.com/quizdeck/quizdeck/internal/storage"
)

// Decoder is satisfied by the pdf package; tests plug in a fake.
type Decoder interface {
	Decode(rs io.ReadSeeker) (extract.Document, error)
}

// Builder runs the extraction pipeline over a decoded document.
type Builder interface {
	BuildGame(doc extract.Document, filename string, requested int) game.Game
}

// POST /games (multipart: pdf=file.pdf, questionCount=10)
func UploadGameHandler(store game.Store, bs storage.BlobStore, dec Decoder, b Builder, defaultCount int, maxUploadBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if maxUploadBytes > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		}
		f, hdr, err := r.FormFile("pdf")
		if err != nil {
			http.Error(w, "pdf file required", 400)
			return
		}
		defer f.Close()

		requested := defaultCount
		if v := r.FormValue("questionCount"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				http.Error(w, "bad questionCount", 400)
				return
			}
			requested = n
		}

		data, err := io.ReadAll(f)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}

		doc, err := dec.Decode(bytes.NewReader(data))
		if err != nil {
			http.Error(w, "decode pdf: "+err.Error(), 400)
			return
		}

		g := b.BuildGame(doc, hdr.Filename, requested)

		if bs != nil {
			if _, err := bs.Put("uploads/"+g.ID+".pdf", bytes.NewReader(data)); err != nil {
				log.Printf("archive upload %s: %v", g.ID, err)
			}
		}

		if err := store.PutGame(g); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"game_id":        g.ID,
			"name":           g.Name,
			"question_count": len(g.Questions),
		})
	}
}

// GET /games/{gameID}
func GetGameHandler(store game.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "gameID")
		g, err := store.GetGame(id)
		if err != nil {
			if errors.Is(err, game.ErrNotFound) {
				http.Error(w, "game not found", 404)
				return
			}
			http.Error(w, err.Error(), 500)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(g)
	}
}

// GET /games?limit=&offset=
func ListGamesHandler(store game.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var opts game.ListOpts
		if v := r.URL.Query().Get("limit"); v != "" {
			opts.Limit, _ = strconv.Atoi(v)
		}
		if v := r.URL.Query().Get("offset"); v != "" {
			opts.Offset, _ = strconv.Atoi(v)
		}
		games, err := store.ListGames(r.Context(), opts)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"games": games})
	}
}
