package handlers

import (
	"net/http"
	"time"
)

// ConnectionChecker is satisfied by the RabbitMQ wrapper.
type ConnectionChecker interface {
	IsClosed() bool
}

// SessionCounter is satisfied by the in-memory session stores.
type SessionCounter interface {
	Len() int
}

type HealthHandler struct {
	Relay     string
	RabbitMQ  ConnectionChecker
	Forms     SessionCounter
	Overlays  SessionCounter
	StartTime time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Relay        string            `json:"relay"`
	Sessions     map[string]int    `json:"sessions"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(relay string, rabbitMQ ConnectionChecker, forms, overlays SessionCounter) *HealthHandler {
	return &HealthHandler{
		Relay:     relay,
		RabbitMQ:  rabbitMQ,
		Forms:     forms,
		Overlays:  overlays,
		StartTime: time.Now(),
	}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	if h.RabbitMQ != nil {
		if h.RabbitMQ.IsClosed() {
			deps["rabbitmq"] = "unhealthy: connection closed"
		} else {
			deps["rabbitmq"] = "healthy"
		}
	} else {
		deps["rabbitmq"] = "not configured"
	}

	status := "healthy"
	for _, v := range deps {
		if v != "healthy" && v != "not configured" {
			status = "degraded"
			break
		}
	}

	sessions := map[string]int{}
	if h.Forms != nil {
		sessions["contact_forms"] = h.Forms.Len()
	}
	if h.Overlays != nil {
		sessions["search_overlays"] = h.Overlays.Len()
	}

	code := http.StatusOK
	if status == "degraded" {
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, HealthResponse{
		Status:       status,
		Version:      "1.0.0",
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Relay:        h.Relay,
		Sessions:     sessions,
		Dependencies: deps,
	})
}
