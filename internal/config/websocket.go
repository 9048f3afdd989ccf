package config

import (
	"net/http"
	"slices"

	"github.com/gorilla/websocket"
)

// Upgrader accepts any origin unless AllowedOrigins is set.
func (c Config) Upgrader() websocket.Upgrader {
	origins := slices.Clone(c.AllowedOrigins)
	return websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			if len(origins) == 0 {
				return true
			}
			return slices.Contains(origins, r.Header.Get("Origin"))
		},
	}
}
