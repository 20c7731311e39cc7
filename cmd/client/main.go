package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"grimoire/pkg/client"
	"grimoire/pkg/client/gui"
	"grimoire/pkg/shared/config"
	"grimoire/pkg/storage"
)

var (
	profile      string
	dataDir      string
	bindingsPath string
	language     string
	contextName  string
	scriptAddr   string
)

var rootCmd = &cobra.Command{
	Use:   "grimoire",
	Short: "Inventory and spellbook client",
	Long:  `Opens the inventory and spellbook of a saved character. The character is saved when the window closes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, ok := gui.ParseContext(contextName)
		if !ok {
			return fmt.Errorf("unknown context %q, want level or map", contextName)
		}
		bindings, err := config.LoadBindings(bindingsPath)
		if err != nil {
			return err
		}

		game, err := client.NewGame(client.Options{
			Profile:    profile,
			Store:      storage.NewStore(dataDir),
			Bindings:   bindings,
			Language:   language,
			Context:    ctx,
			ScriptAddr: scriptAddr,
		})
		if err != nil {
			return err
		}
		return client.Run(game)
	},
}

func init() {
	rootCmd.Flags().StringVar(&profile, "profile", config.DefaultProfile, "Character profile name")
	rootCmd.Flags().StringVar(&dataDir, "data", storage.DataDir, "Profile directory")
	rootCmd.Flags().StringVar(&bindingsPath, "bindings", "", "YAML key binding overrides")
	rootCmd.Flags().StringVar(&language, "lang", os.Getenv("LANG"), "Preferred languages, e.g. de-AT,en")
	rootCmd.Flags().StringVar(&contextName, "context", "level", "Where the inventory is opened: level or map")
	rootCmd.Flags().StringVar(&scriptAddr, "script-addr", "", "Script console websocket URL, e.g. "+config.ScriptConsoleURL)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
