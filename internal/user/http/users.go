package http

import (
	"errors"
	"net/http"

	"github.com/petpalhq/petpal/internal/user/service"
	"github.com/petpalhq/petpal/internal/user/store"
	"github.com/petpalhq/petpal/pkg/httpx"
	"github.com/petpalhq/petpal/pkg/petpalsdk"
	"github.com/petpalhq/petpal/pkg/slogx"
)

type UsersHandler struct {
	AccountService *service.AccountService
}

// HandleList handles GET /v1/users. The listing is a public directory of
// accounts: ids, usernames and registration dates, never verifiers.
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	users, err := h.AccountService.ListUsers(ctx)
	if err != nil {
		log.Error("failed to list users", "err", err)
		petpalsdk.ErrServerError.WriteError(w)
		return
	}

	out := make([]petpalsdk.UserInfo, 0, len(users))
	for _, u := range users {
		out = append(out, petpalsdk.UserInfo{
			UserID:    u.ID,
			Username:  u.Username,
			CreatedAt: u.CreatedAt,
		})
	}

	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleMe handles GET /v1/users/me. It returns the account behind the
// presented token, which makes it the de facto token introspection endpoint.
func (h *UsersHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := ctx.Value(httpx.CtxKeyUserID).(string)
	if !ok || userID == "" {
		petpalsdk.ErrInvalidToken.WriteError(w)
		return
	}

	user, err := h.AccountService.GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		// The token verified but the account is gone, so the token no
		// longer identifies anyone.
		log.Warn("token subject no longer exists", "user_id", userID)
		petpalsdk.ErrInvalidToken.WriteError(w)
		return
	}
	if err != nil {
		log.Warn("failed to load user", "user_id", userID, "err", err)
		petpalsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, petpalsdk.UserInfo{
		UserID:    user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	})
}
