package websocket

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/mgfilms/site-service/internal/http/middleware"
	"github.com/mgfilms/site-service/internal/utils/jwt"
	"github.com/mgfilms/site-service/internal/utils/response"
	wsClient "github.com/mgfilms/site-service/internal/websocket"
)

func newUpgrader(allowedOrigin string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return allowedOrigin == "" || allowedOrigin == "*" || origin == "" || origin == allowedOrigin
		},
	}
}

// WebSocketHandler upgrades an admin dashboard to a live event stream
// @Summary Admin event stream
// @Description Upgrades to a WebSocket that receives inquiry.received and content.changed events
// @Tags websocket
// @Param token query string true "Admin JWT"
// @Success 101 "Switching protocols"
// @Failure 401 {object} response.Response "Token required"
// @Failure 403 {object} response.Response "Invalid token"
// @Router /api/ws [get]
func WebSocketHandler(hub *wsClient.Hub, jwtSecret, allowedOrigin string) http.HandlerFunc {
	upgrader := newUpgrader(allowedOrigin)

	return func(w http.ResponseWriter, r *http.Request) {
		// Browsers cannot set headers on a WebSocket handshake, so the token
		// usually arrives in the query string.
		token := r.URL.Query().Get("token")
		if token == "" {
			token = middleware.SessionFromContext(r.Context()).Token
		}
		if token == "" {
			slog.Warn("WebSocket connection attempted without token")
			response.WriteJSON(w, http.StatusUnauthorized, response.GeneralError(errors.New("token required")))
			return
		}

		adminID, err := jwt.ExtractAdminIDFromToken(token, jwtSecret)
		if err != nil {
			slog.Warn("WebSocket connection attempted with invalid token", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusForbidden, response.GeneralError(errors.New("invalid token")))
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Error("Failed to upgrade WebSocket connection", slog.String("error", err.Error()))
			return
		}

		client := wsClient.NewClient(conn, adminID, hub)
		hub.RegisterClient(client)
		client.Start()

		slog.Info("WebSocket connection established", slog.Int64("admin_id", adminID))
	}
}
