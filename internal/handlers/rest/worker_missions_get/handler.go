package worker_missions_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"pako/internal/dto"
	"pako/internal/entities"
	"pako/internal/service/assignment"
	"pako/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	workerID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var statuses []entities.MissionStatusType
	for _, raw := range r.URL.Query()["status"] {
		statuses = append(statuses, entities.MissionStatusType(raw))
	}

	missions, err := h.service.MissionsByWorker(r.Context(), workerID, statuses...)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidInput):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, assignment.ErrUnknownWorker):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.MissionList{
		Missions: dto.FromMissionList(missions),
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
