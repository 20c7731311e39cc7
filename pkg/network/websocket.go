package network

import (
	"context"
	"log"
	"net/http"
	"sync"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	protocol "grimoire/pkg/shared/network"
)

// ScriptServer is the other end of a Console. Every connected client
// receives the commands passed to Send.
type ScriptServer struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]chan protocol.Command
	replies chan protocol.Reply
}

func NewScriptServer() *ScriptServer {
	return &ScriptServer{
		clients: make(map[*websocket.Conn]chan protocol.Command),
		replies: make(chan protocol.Reply, queueSize),
	}
}

// Replies yields the acknowledgements of all clients.
func (s *ScriptServer) Replies() <-chan protocol.Reply { return s.replies }

func (s *ScriptServer) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// Send queues cmd for every client and returns how many got it.
func (s *ScriptServer) Send(cmd protocol.Command) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, out := range s.clients {
		select {
		case out <- cmd:
			n++
		default:
		}
	}
	return n
}

func (s *ScriptServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"127.0.0.1:*", "localhost:*"},
	})
	if err != nil {
		log.Printf("Script server: accept: %v", err)
		return
	}
	defer c.CloseNow()

	out := make(chan protocol.Command, queueSize)
	s.mu.Lock()
	s.clients[c] = out
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.clients, c)
		s.mu.Unlock()
	}()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go func() {
		defer cancel()
		for {
			var reply protocol.Reply
			if err := wsjson.Read(ctx, c, &reply); err != nil {
				return
			}
			select {
			case s.replies <- reply:
			default:
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case cmd := <-out:
			if err := wsjson.Write(ctx, c, cmd); err != nil {
				return
			}
		}
	}
}

// StartScriptServer serves s under /script on addr.
func StartScriptServer(addr string, s *ScriptServer) error {
	mux := http.NewServeMux()
	mux.Handle("/script", s)
	return http.ListenAndServe(addr, mux)
}
