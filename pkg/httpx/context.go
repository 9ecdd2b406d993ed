package httpx

type ctxKey string

const (
	// CtxKeyUserID carries the verified account id of the caller. Handlers
	// must scope every data operation to this identity and never trust an
	// owner supplied in the request body.
	CtxKeyUserID ctxKey = "user_id"

	CtxKeyUsername ctxKey = "username"
	CtxKeyClaims   ctxKey = "claims" // full jwtx.Claims if a handler needs them
)
