package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"grimoire/pkg/network"
	"grimoire/pkg/shared/config"
	protocol "grimoire/pkg/shared/network"
)

var addr string

var rootCmd = &cobra.Command{
	Use:   "grimoire-script",
	Short: "Script console endpoint for the grimoire client",
	Long: `Serves the script websocket and forwards JSON commands read from stdin,
one object per line, to every connected client. Replies are printed to stdout.

  {"id":1,"type":"learn_spell","spell":"holyfire"}
  {"id":2,"type":"add_item","item":"eq_amulet","quantity":1}`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server := network.NewScriptServer()
		go func() {
			for r := range server.Replies() {
				fmt.Fprintf(cmd.OutOrStdout(), "reply %d ok=%t %s\n", r.ID, r.OK, r.Error)
			}
		}()
		go func() {
			log.Printf("Script endpoint listening on ws://%s/script", addr)
			if err := network.StartScriptServer(addr, server); err != nil {
				log.Fatalf("Script server: %v", err)
			}
		}()
		return forward(cmd.InOrStdin(), server)
	},
}

func forward(r io.Reader, server *network.ScriptServer) error {
	dec := json.NewDecoder(r)
	for {
		var c protocol.Command
		if err := dec.Decode(&c); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read command: %w", err)
		}
		if n := server.Send(c); n == 0 {
			log.Printf("No client connected, dropped command %d", c.ID)
		}
	}
}

func defaultAddr() string {
	u, err := url.Parse(config.ScriptConsoleURL)
	if err != nil {
		return "127.0.0.1:8081"
	}
	return u.Host
}

func init() {
	rootCmd.Flags().StringVar(&addr, "addr", defaultAddr(), "Listen address")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
