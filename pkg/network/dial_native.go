//go:build !js || !wasm

package network

import (
	"context"
	"net/http"

	"github.com/coder/websocket"
)

// dial connects to a script endpoint.
func dial(ctx context.Context, url string) (*websocket.Conn, error) {
	c, _, err := websocket.Dial(ctx, url, &websocket.DialOptions{
		HTTPHeader: http.Header{"User-Agent": []string{"grimoire-client"}},
	})
	return c, err
}
