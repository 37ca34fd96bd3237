package package_assign_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"pako/internal/dto"
	"pako/internal/service/assignment"
	"pako/internal/service/identifier"
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
	var assignDTO dto.PackageAssign
	err := json.NewDecoder(r.Body).Decode(&assignDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	mission, err := h.service.AssignPackageToWorker(r.Context(), assignDTO.PackageCode, assignDTO.WorkerID)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidInput):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, assignment.ErrUnknownWorker),
			errors.Is(err, assignment.ErrPackageNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, assignment.ErrPackageNotAssignable),
			errors.Is(err, assignment.ErrMissionConflict),
			errors.Is(err, identifier.ErrIdentifierExhausted):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FromMission(mission)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
