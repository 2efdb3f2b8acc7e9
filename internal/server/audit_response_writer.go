package server

import (
	"bytes"
	"net/http"
)

// maxAuditBody bounds how much of a response is copied into the audit log.
const maxAuditBody = 4 << 10

type responseWriterWrapper struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
	written     int
	buffer      bytes.Buffer
}

func newResponseWriterWrapper(w http.ResponseWriter) *responseWriterWrapper {
	return &responseWriterWrapper{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (w *responseWriterWrapper) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *responseWriterWrapper) Write(b []byte) (int, error) {
	w.wroteHeader = true
	if room := maxAuditBody - w.buffer.Len(); room > 0 {
		if len(b) < room {
			room = len(b)
		}
		w.buffer.Write(b[:room])
	}
	n, err := w.ResponseWriter.Write(b)
	w.written += n
	return n, err
}

func (w *responseWriterWrapper) GetStatusCode() int {
	return w.statusCode
}

// GetBody returns the recorded prefix of the response, marked when cut short.
func (w *responseWriterWrapper) GetBody() []byte {
	if w.written > w.buffer.Len() {
		return append(w.buffer.Bytes(), "...(truncated)"...)
	}
	return w.buffer.Bytes()
}
