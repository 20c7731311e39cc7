package network

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	protocol "grimoire/pkg/shared/network"
)

func startServer(t *testing.T) (*ScriptServer, string) {
	t.Helper()
	script := NewScriptServer()
	mux := http.NewServeMux()
	mux.Handle("/script", script)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return script, "ws" + strings.TrimPrefix(srv.URL, "http") + "/script"
}

func TestConsoleRoundTrip(t *testing.T) {
	script, url := startServer(t)
	console := NewConsole(url)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- console.Run(ctx) }()

	require.Eventually(t, func() bool { return script.Clients() == 1 }, 2*time.Second, 10*time.Millisecond)

	sent := protocol.Command{ID: 7, Type: protocol.CommandLearnSpell, Spell: "fireball"}
	require.Equal(t, 1, script.Send(sent))

	select {
	case got := <-console.Commands():
		assert.Equal(t, sent, got)
	case <-time.After(2 * time.Second):
		t.Fatal("command not received")
	}

	console.Reply(protocol.Reply{ID: 7, OK: true})
	select {
	case got := <-script.Replies():
		assert.Equal(t, protocol.Reply{ID: 7, OK: true}, got)
	case <-time.After(2 * time.Second):
		t.Fatal("reply not received")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("console did not stop")
	}
}

func TestConsoleDialError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/script"
	srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	err := NewConsole(url).Run(ctx)
	assert.ErrorContains(t, err, "dial")
}

func TestSendWithoutClients(t *testing.T) {
	script := NewScriptServer()
	assert.Zero(t, script.Send(protocol.Command{Type: protocol.CommandHint, Key: "NoSpells"}))
}
