package network

import (
	"context"
	"fmt"
	"log"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	protocol "grimoire/pkg/shared/network"
)

const queueSize = 64

// Console receives script commands from a websocket endpoint and hands
// them to the game loop through Commands. The game loop drains the
// channel once per frame and answers with Reply.
type Console struct {
	url      string
	commands chan protocol.Command
	replies  chan protocol.Reply
}

func NewConsole(url string) *Console {
	return &Console{
		url:      url,
		commands: make(chan protocol.Command, queueSize),
		replies:  make(chan protocol.Reply, queueSize),
	}
}

func (c *Console) Commands() <-chan protocol.Command { return c.commands }

// Reply queues an acknowledgement. A full queue drops the reply rather
// than stalling the frame.
func (c *Console) Reply(r protocol.Reply) {
	select {
	case c.replies <- r:
	default:
		log.Printf("Script console: dropping reply for command %d", r.ID)
	}
}

// Run dials the endpoint and pumps messages until ctx is done or the
// peer closes the connection. Both of those return nil.
func (c *Console) Run(ctx context.Context) error {
	conn, err := dial(ctx, c.url)
	if err != nil {
		return fmt.Errorf("dial %s: %w", c.url, err)
	}
	defer conn.CloseNow()
	log.Printf("Script console connected to %s", c.url)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go c.writeLoop(ctx, conn)

	for {
		var cmd protocol.Command
		if err := wsjson.Read(ctx, conn, &cmd); err != nil {
			if ctx.Err() != nil || websocket.CloseStatus(err) == websocket.StatusNormalClosure {
				return nil
			}
			return fmt.Errorf("read command: %w", err)
		}
		select {
		case c.commands <- cmd:
		case <-ctx.Done():
			return nil
		}
	}
}

func (c *Console) writeLoop(ctx context.Context, conn *websocket.Conn) {
	for {
		select {
		case <-ctx.Done():
			return
		case r := <-c.replies:
			if err := wsjson.Write(ctx, conn, r); err != nil {
				log.Printf("Script console: write reply: %v", err)
				return
			}
		}
	}
}
