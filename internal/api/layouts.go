package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/matzehuels/dockyard/pkg/errors"
	"github.com/matzehuels/dockyard/pkg/persist"
)

// layoutList is the response shape of GET /v1/layouts.
type layoutList struct {
	Layouts []string `json:"layouts"`
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	names, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, apperrors.Wrap(apperrors.ErrCodeStore, err, "list layouts"))
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, layoutList{Layouts: names})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := apperrors.ValidateLayoutName(name); err != nil {
		writeError(w, err)
		return
	}

	data, ok, err := s.store.Get(r.Context(), name)
	if err != nil {
		writeError(w, apperrors.Wrap(apperrors.ErrCodeStore, err, "load layout %q", name))
		return
	}
	if !ok {
		writeError(w, apperrors.New(apperrors.ErrCodeLayoutNotFound, "layout %q not found", name))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) handlePut(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := apperrors.ValidateLayoutName(name); err != nil {
		writeError(w, err)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxLayoutBytes+1))
	if err != nil {
		writeError(w, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "read request body"))
		return
	}
	if len(body) > maxLayoutBytes {
		writeError(w, apperrors.New(apperrors.ErrCodeInvalidInput, "layout document too large"))
		return
	}

	// Reject anything the engine would refuse to restore. Storing the
	// re-marshaled form also normalizes formatting across clients.
	doc, err := persist.Unmarshal(body)
	if err != nil {
		writeError(w, classifyParseError(err))
		return
	}
	canonical, err := persist.Marshal(doc)
	if err != nil {
		writeError(w, apperrors.Wrap(apperrors.ErrCodeInternal, err, "encode layout"))
		return
	}

	if err := s.store.Set(r.Context(), name, canonical); err != nil {
		writeError(w, apperrors.Wrap(apperrors.ErrCodeStore, err, "store layout %q", name))
		return
	}

	s.logger.Info("stored layout", "name", name, "widgets", len(doc.WidgetIDs()))
	writeJSON(w, http.StatusOK, map[string]string{"name": name})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := apperrors.ValidateLayoutName(name); err != nil {
		writeError(w, err)
		return
	}

	if err := s.store.Delete(r.Context(), name); err != nil {
		writeError(w, apperrors.Wrap(apperrors.ErrCodeStore, err, "delete layout %q", name))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// classifyParseError maps persist sentinel errors onto API error codes.
func classifyParseError(err error) error {
	if errors.Is(err, persist.ErrUnsupportedVersion) {
		return apperrors.Wrap(apperrors.ErrCodeUnsupportedVersion, err, "unsupported layout version")
	}
	return apperrors.Wrap(apperrors.ErrCodeCorruptLayout, err, "invalid layout document")
}
