package adapthttp

import (
	"errors"
	"net/http"

	"fitplan/internal/domain"
)

// quizRequest is the questionnaire body. Weights and height may be sent in
// imperial units and are converted before they reach the planner.
type quizRequest struct {
	domain.Intake
	WeightUnit string `json:"weightUnit"`
	HeightUnit string `json:"heightUnit"`
}

func (q quizRequest) normalize() (domain.Intake, error) {
	in := q.Intake
	switch q.WeightUnit {
	case "", "kg":
	case "lb":
		in.WeightKg = domain.ConvertWeight(in.WeightKg, "lb", "kg")
		in.TargetWeightKg = domain.ConvertWeight(in.TargetWeightKg, "lb", "kg")
	default:
		return in, errors.New("weightUnit must be \"kg\" or \"lb\"")
	}
	switch q.HeightUnit {
	case "", "cm":
	case "in":
		in.HeightCm = domain.ConvertHeight(in.HeightCm, "in", "cm")
	default:
		return in, errors.New("heightUnit must be \"cm\" or \"in\"")
	}
	return in, nil
}

func decodeIntake(r *http.Request) (domain.Intake, error) {
	var body quizRequest
	if err := parseJSON(r, &body); err != nil {
		return domain.Intake{}, err
	}
	return body.normalize()
}

func (s *Server) handleQuizSubmit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	in, err := decodeIntake(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	user := userFromContext(r)
	result, err := s.quiz.Submit(r.Context(), user.ID, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (s *Server) handleQuizPreview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	in, err := decodeIntake(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	plan, budget, err := s.quiz.Preview(in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"plan": plan, "energy": budget})
}

func (s *Server) handlePlanLatest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	result, err := s.quiz.LatestPlan(r.Context(), userFromContext(r).ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handlePlanHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	limit := intQuery(r, "limit", 10)
	items, err := s.quiz.History(r.Context(), userFromContext(r).ID, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if items == nil {
		items = []domain.QuizResult{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}
