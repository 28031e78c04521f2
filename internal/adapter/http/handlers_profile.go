package adapthttp

import (
	"net/http"

	"fitplan/internal/app"
)

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(r)

	switch r.Method {
	case http.MethodGet:
		p, err := s.profile.Get(ctx, user.ID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, p)

	case http.MethodPatch:
		var body app.ProfileUpdate
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		p, err := s.profile.Update(ctx, user.ID, body)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, p)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
