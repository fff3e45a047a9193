package http

import (
	"net/http"

	"github.com/darrylcauldwell/workforce-backend-go/internal/domain/lookup"
	"github.com/darrylcauldwell/workforce-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LookupHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type LookupHandlerImpl struct {
	lookupService lookup.LookupService
}

func NewLookupHandler(lookupService lookup.LookupService) LookupHandler {
	return &LookupHandlerImpl{lookupService: lookupService}
}

// List implements LookupHandler.
func (h *LookupHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	kind := lookup.Kind(chi.URLParam(r, "kind"))

	options, err := h.lookupService.List(r.Context(), kind)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, options)
}
