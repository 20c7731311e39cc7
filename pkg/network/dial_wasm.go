//go:build js && wasm

package network

import (
	"context"

	"github.com/coder/websocket"
)

// dial connects to a script endpoint. Browsers do not let us set
// headers, so no dial options are passed.
func dial(ctx context.Context, url string) (*websocket.Conn, error) {
	c, _, err := websocket.Dial(ctx, url, nil)
	return c, err
}
