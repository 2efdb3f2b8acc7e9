package server

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
)

func (s *Server) auditLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		entry := AuditLogEntry{
			Timestamp: started,
			Method:    r.Method,
			Path:      r.URL.Path,
			Handler:   routeName(r),
			Target:    routeTarget(r),
		}

		if username, _, ok := r.BasicAuth(); ok {
			entry.Username = username
		}

		if r.Body != nil && !strings.Contains(r.Header.Get("Content-Type"), "multipart/form-data") {
			requestBody, _ := io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewBuffer(requestBody))
			entry.Request = string(requestBody)
		}

		wrw := newResponseWriterWrapper(w)

		next.ServeHTTP(wrw, r)

		entry.StatusCode = wrw.GetStatusCode()
		entry.Response = string(wrw.GetBody())
		entry.Duration = time.Since(started)

		s.AuditManager.LogEntry(r.Context(), entry)
	})
}

func routeName(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil && route.GetName() != "" {
		return route.GetName()
	}
	return "unknown"
}

// routeTarget renders the path variables as "id=3,eventID=7" in route order.
func routeTarget(r *http.Request) string {
	vars := mux.Vars(r)
	if len(vars) == 0 {
		return ""
	}
	parts := make([]string, 0, len(vars))
	for _, name := range []string{"id", "eventID"} {
		if v, ok := vars[name]; ok {
			parts = append(parts, name+"="+v)
		}
	}
	return strings.Join(parts, ",")
}
