package auth

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Verifier checks HTTP Basic credentials against a single fixed pair.
type Verifier struct {
	username string
	password string

	logger *zap.Logger
}

func NewVerifier(username, password string, logger *zap.Logger) *Verifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Verifier{
		username: username,
		password: password,
		logger:   logger,
	}
}

// Verify reports whether both fields match. Both comparisons run
// unconditionally, in constant time, so a mismatched username does not
// return faster than a mismatched password.
func (v *Verifier) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(v.password)) == 1
	return userOK && passOK
}

// RequireBasic rejects the request with a Basic challenge unless it carries
// the configured credentials. No handler runs on failure.
func (v *Verifier) RequireBasic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok || !v.Verify(username, password) {
			v.logger.Info("rejected request with invalid credentials",
				zap.String("path", r.URL.Path))
			w.Header().Set("WWW-Authenticate", "Basic")
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{"error": "Invalid credentials"})
			return
		}
		next.ServeHTTP(w, r.WithContext(withUserContext(r.Context(), username)))
	})
}
