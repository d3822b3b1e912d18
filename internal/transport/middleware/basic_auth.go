package middleware

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strconv"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/amulet-backend/internal/config"
	"github.com/heartmarshall/amulet-backend/pkg/ctxutil"
)

// BasicAuth returns middleware that guards the admin API with the single
// shared credential from cfg. A bcrypt PasswordHash takes precedence over
// the plain Password. On success the user name is stored in the context.
func BasicAuth(cfg config.AdminConfig, logger *slog.Logger) Middleware {
	challenge := "Basic realm=" + strconv.Quote(cfg.Realm) + `, charset="UTF-8"`
	wantUser := []byte(cfg.User)
	wantPass := []byte(cfg.Password)
	hash := []byte(cfg.PasswordHash)

	check := func(user, pass string) bool {
		userOK := subtle.ConstantTimeCompare([]byte(user), wantUser) == 1
		var passOK bool
		if len(hash) > 0 {
			passOK = bcrypt.CompareHashAndPassword(hash, []byte(pass)) == nil
		} else {
			passOK = subtle.ConstantTimeCompare([]byte(pass), wantPass) == 1
		}
		return userOK && passOK
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			if !ok || !check(user, pass) {
				if ok {
					logger.WarnContext(r.Context(), "admin auth failed",
						slog.String("user", user),
						slog.String("remote_ip", clientIP(r)),
						slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
					)
				}
				w.Header().Set("WWW-Authenticate", challenge)
				writeError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
				return
			}

			if h, ok := r.Context().Value(adminHolderKey{}).(*adminHolder); ok {
				h.user = user
			}
			ctx := ctxutil.WithAdminUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// adminHolder lets Logger see the user authenticated further down the chain.
type adminHolder struct{ user string }

type adminHolderKey struct{}

func withAdminHolder(ctx context.Context, h *adminHolder) context.Context {
	return context.WithValue(ctx, adminHolderKey{}, h)
}
