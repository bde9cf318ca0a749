package api

import (
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/jwtauth"
)

const sessionKeyEditor = "editor"

// Auth holds the two accepted credential mechanisms: a server-side
// session cookie and an HS256 bearer token. Mutation endpoints accept
// either; there is no local credential store.
type Auth struct {
	Sessions *scs.SessionManager
	Tokens   *jwtauth.JWTAuth
}

// NewAuth creates the auth layer. secureCookies should be true outside
// development.
func NewAuth(secret string, sessionTTL time.Duration, secureCookies bool) *Auth {
	sm := scs.New()
	sm.Lifetime = sessionTTL
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = secureCookies

	return &Auth{
		Sessions: sm,
		Tokens:   jwtauth.New("HS256", []byte(secret), nil),
	}
}

// Middleware returns the stack shared by every route: session loading
// and bearer verification. Neither rejects on its own; RequireEditor
// does the rejecting.
func (a *Auth) Middleware() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		a.Sessions.LoadAndSave,
		jwtauth.Verifier(a.Tokens),
	}
}

// editorFrom returns the authenticated editor identity, or "" when the
// request carries neither a live session nor a valid bearer token.
func (a *Auth) editorFrom(r *http.Request) string {
	if sub := a.Sessions.GetString(r.Context(), sessionKeyEditor); sub != "" {
		return sub
	}

	token, claims, err := jwtauth.FromContext(r.Context())
	if err != nil || token == nil {
		return ""
	}
	if sub, ok := claims["sub"].(string); ok && sub != "" {
		return sub
	}
	return "editor"
}

// RequireEditor guards mutation endpoints. A live session or a valid
// bearer token passes; anything else gets 401.
func (a *Auth) RequireEditor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.editorFrom(r) == "" {
			respondError(w, r, http.StatusUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Login verifies the bearer token and opens a server session for it, so
// browser clients can drop the token afterwards.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	token, claims, err := jwtauth.FromContext(r.Context())
	if err != nil || token == nil {
		respondError(w, r, http.StatusUnauthorized, "valid bearer token required")
		return
	}

	subject := "editor"
	if sub, ok := claims["sub"].(string); ok && sub != "" {
		subject = sub
	}

	if err := a.Sessions.RenewToken(r.Context()); err != nil {
		respondServiceError(w, r, err)
		return
	}
	a.Sessions.Put(r.Context(), sessionKeyEditor, subject)

	respond(w, r, http.StatusOK, map[string]string{"subject": subject})
}

// Logout destroys the session. Bearer tokens are stateless and simply
// expire.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.Sessions.Destroy(r.Context()); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, map[string]string{"status": "signed out"})
}

// Me reports the authenticated identity.
func (a *Auth) Me(w http.ResponseWriter, r *http.Request) {
	subject := a.editorFrom(r)
	if subject == "" {
		respondError(w, r, http.StatusUnauthorized, "authentication required")
		return
	}
	respond(w, r, http.StatusOK, map[string]string{"subject": subject})
}
