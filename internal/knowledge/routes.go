package knowledge

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/site-assist/internal/render"
)

// RegisterRoutes mounts the knowledge API endpoints on the given router.
func RegisterRoutes(r chi.Router, idx *Index, defaultLanguage string) {
	r.Get("/api/knowledge/search", searchHandler(idx, defaultLanguage))
	r.Get("/api/knowledge/items/{itemID}", getHandler(idx))
	r.Get("/api/knowledge/items/{itemID}/html", htmlHandler(idx))
	r.Post("/api/knowledge/items", createHandler(idx))
	r.Put("/api/knowledge/items/{itemID}", updateHandler(idx))
	r.Delete("/api/knowledge/items/{itemID}", deleteHandler(idx))
}

func searchHandler(idx *Index, defaultLanguage string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		if query == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "q is required"})
			return
		}
		language := r.URL.Query().Get("language")
		if language == "" {
			language = defaultLanguage
		}
		category := r.URL.Query().Get("category")

		results := idx.Search(query, language, category)
		if results == nil {
			results = []SearchResult{}
		}
		writeJSON(w, http.StatusOK, results)
	}
}

func getHandler(idx *Index) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := idx.Get(chi.URLParam(r, "itemID"))
		if err != nil {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
			return
		}
		writeJSON(w, http.StatusOK, item)
	}
}

func htmlHandler(idx *Index) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := idx.Get(chi.URLParam(r, "itemID"))
		if err != nil {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
			return
		}
		body, err := render.Markdown(item.Content)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		page, err := render.Article(item.Title, item.Language, body)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page)
	}
}

func createHandler(idx *Index) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item Item
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body: " + err.Error()})
			return
		}
		if item.ID == "" || item.Title == "" || item.Language == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "id, title, and language are required"})
			return
		}
		if err := idx.Add(item); err != nil {
			writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusCreated, item)
	}
}

func updateHandler(idx *Index) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item Item
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body: " + err.Error()})
			return
		}
		item.ID = chi.URLParam(r, "itemID")
		if err := idx.Update(item); err != nil {
			if errors.Is(err, ErrItemNotFound) {
				writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
				return
			}
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, item)
	}
}

func deleteHandler(idx *Index) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := idx.Delete(chi.URLParam(r, "itemID")); err != nil {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
