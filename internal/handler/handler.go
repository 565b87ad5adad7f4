package handler

import (
	"encoding/json"
	"net/http"

	"github.com/fakhrymubarak/weather-activity-api/internal/config"
	"github.com/fakhrymubarak/weather-activity-api/internal/model"
)

func writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		config.GetLogger().Errorw("could not encode json", "error", err)
	}
}

// HandleHealth reports that the process is up. It does not probe Open-Meteo.
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, model.Response{Message: "OK"})
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusNotFound, model.NewErrorResponse("Not found"))
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusMethodNotAllowed, model.NewErrorResponse("Method not allowed"))
}
