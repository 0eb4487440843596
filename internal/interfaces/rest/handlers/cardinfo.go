package handlers

import (
	"net/http"

	"github.com/go-chi/chi"

	"github.com/finverse-labs/cardinfo-service/internal/application"
	"github.com/finverse-labs/cardinfo-service/internal/interfaces/rest"
)

func (h *Handlers) GetCardInfo(w http.ResponseWriter, r *http.Request) {
	query := application.CardQuery{
		BIN:         chi.URLParam(r, "bin"),
		CardNumber:  chi.URLParam(r, "cardNumber"),
		ExpiryMonth: chi.URLParam(r, "expiryMonth"),
		ExpiryYear:  chi.URLParam(r, "expiryYear"),
	}

	inspection, err := h.cardInfoService.Inspect(r.Context(), query)
	if err != nil {
		rest.WriteJSON(w, rest.ToHTTPStatus(err), rest.CardInfoResponse{
			Metadata:   rest.ServiceMetadata,
			Request:    rest.ToRequestEcho(query),
			Validation: rest.ToValidationBody(inspection.Validation),
			CardInfo:   nil,
			Status:     rest.StatusError,
			Message:    err.Error(),
		})
		return
	}

	rest.WriteJSON(w, http.StatusOK, rest.CardInfoResponse{
		Metadata:   rest.ServiceMetadata,
		Request:    rest.ToRequestEcho(query),
		Validation: rest.ToValidationBody(inspection.Validation),
		CardInfo:   rest.ToCardInfoBody(inspection.Record),
		Status:     rest.StatusSuccess,
		Message:    "card number and expiry passed validation",
	})
}
