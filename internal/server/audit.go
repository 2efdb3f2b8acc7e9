package server

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type AuditLogEntry struct {
	Timestamp  time.Time `json:"timestamp"`
	Handler    string    `json:"handler"`
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	StatusCode int       `json:"status_code"`
	Username   string    `json:"username,omitempty"`
	// Target is the id named in the path: a season, inhabitant or household.
	Target   string        `json:"target,omitempty"`
	Duration time.Duration `json:"duration"`
	Request  string        `json:"request,omitempty"`
	Response string        `json:"response,omitempty"`
}

func (e AuditLogEntry) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddTime("timestamp", e.Timestamp)
	enc.AddString("handler", e.Handler)
	enc.AddString("method", e.Method)
	enc.AddString("path", e.Path)
	enc.AddInt("status_code", e.StatusCode)
	if e.Username != "" {
		enc.AddString("username", e.Username)
	}
	if e.Target != "" {
		enc.AddString("target", e.Target)
	}
	enc.AddDuration("duration", e.Duration)
	if e.Request != "" {
		enc.AddString("request", e.Request)
	}
	if e.Response != "" {
		enc.AddString("response", e.Response)
	}
	return nil
}

type auditBatch []AuditLogEntry

func (b auditBatch) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, e := range b {
		if err := enc.AppendObject(e); err != nil {
			return err
		}
	}
	return nil
}

func batchField(batch []AuditLogEntry) zap.Field {
	return zap.Array("entries", auditBatch(batch))
}
