package http

import (
	"net/http"
)

const serverVersionHeader = "X-Server-Version"

// withServerVersion stamps every response, including raw hijacked ones,
// with the running server version.
func (h *Handler) withServerVersion(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.appInfo != nil {
			w.Header().Set(serverVersionHeader, h.appInfo.GetAppVersion(r.Context()))
		}
		next.ServeHTTP(w, r)
	})
}
