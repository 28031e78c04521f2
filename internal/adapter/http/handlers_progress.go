package adapthttp

import (
	"net/http"

	"fitplan/internal/app"
	"fitplan/internal/domain"
)

func (s *Server) handleProgressRecord(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body app.ProgressInput
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	entry, err := s.progress.Record(r.Context(), userFromContext(r).ID, body)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"entry": entry})
}

func (s *Server) handleProgressRecent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	limit := intQuery(r, "limit", 30)
	items, err := s.progress.ListRecent(r.Context(), userFromContext(r).ID, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if items == nil {
		items = []domain.ProgressLog{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleProgressUndoLast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	deleted, err := s.progress.UndoLast(r.Context(), userFromContext(r).ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "deleted": deleted})
}
