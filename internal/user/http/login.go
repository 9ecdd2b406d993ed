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

type LoginHandler struct {
	AccountService *service.AccountService
	TokenService   *service.TokenService
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ServeHTTP handles POST /v1/users/login. The failure response is
// identical for unknown usernames and wrong passwords.
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		petpalsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	user, err := h.AccountService.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			petpalsdk.ErrInvalidCredentials.WriteError(w)
			return
		}
		log.Error("login failed", "err", err)
		petpalsdk.ErrServerError.WriteError(w)
		return
	}

	issued, err := h.TokenService.Issue(user)
	if err != nil {
		log.Error("token signing failed", "user_id", user.ID, "err", err)
		petpalsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, petpalsdk.TokenResponse{
		Token:     issued.Token,
		TokenType: issued.TokenType,
		ExpiresIn: issued.ExpiresIn,
	})
}
