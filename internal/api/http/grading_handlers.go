package http

import (
	"encoding/json"
	"net/http"

	"github.com/mind-engage/mindengage-english/internal/question"
)

type checkAnswerReq struct {
	QuestionID int    `json:"question_id"`
	UserAnswer string `json:"user_answer"`
}

// POST /check-answer
func CheckAnswerHandler(svc *question.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req checkAnswerReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		res, err := svc.Check(r.Context(), req.QuestionID, req.UserAnswer)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}
