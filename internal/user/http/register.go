package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/petpalhq/petpal/internal/user/service"
	"github.com/petpalhq/petpal/pkg/httpx"
	"github.com/petpalhq/petpal/pkg/petpalsdk"
	"github.com/petpalhq/petpal/pkg/slogx"
)

type RegisterHandler struct {
	AccountService *service.AccountService
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ServeHTTP handles POST /v1/users/register.
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		petpalsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	user, err := h.AccountService.Register(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			petpalsdk.ErrInvalidRequest.WriteError(w)
		case errors.Is(err, service.ErrUsernameTaken):
			petpalsdk.ErrUsernameTaken.WriteError(w)
		default:
			log.Error("registration failed", "err", err)
			petpalsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, petpalsdk.RegisterResponse{
		UserID:   user.ID,
		Username: user.Username,
	})
}
