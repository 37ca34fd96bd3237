package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"pako/internal/dto"
	"pako/internal/pkg/geo"
	"pako/internal/service/order"
	"pako/internal/service/pricing"
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
	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	createdOrder, createdPackages, err := h.service.CreateOrder(r.Context(), orderCreateDTO.ToDraft())
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrNoPackages),
			errors.Is(err, order.ErrInvalidPhone),
			errors.Is(err, order.ErrInvalidTier),
			errors.Is(err, order.ErrInvalidPaymentMethod),
			errors.Is(err, order.ErrMissingPricingInput),
			errors.Is(err, geo.ErrInvalidCoordinate),
			errors.Is(err, pricing.ErrInvalidPricingInput):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNumberConflict),
			errors.Is(err, order.ErrPackageCodeConflict),
			errors.Is(err, order.ErrPackageCodeExhausted):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.OrderWithPackages{
		Order:    dto.FromOrder(createdOrder),
		Packages: dto.FromPackageList(createdPackages),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
