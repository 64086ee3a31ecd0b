package http

import (
	"encoding/json"
	"fmt"
	"net/http"
)

func (api AssistServer) TranslateText(w http.ResponseWriter, r *http.Request) {
	var req TranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	translation, err := api.TranslateTextUseCase.Execute(r.Context(), req.Text, req.TargetLanguage)
	if err != nil {
		api.Logger.Printf("TranslateText: failed to translate to %q: %v", req.TargetLanguage, err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toTranslation(translation))
}
