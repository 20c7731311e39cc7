// check_keys prints the resolved key bindings. A bindings path that does
// not exist yet is created with the defaults.
//
//	go run ./tools [bindings.yaml]
package main

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"grimoire/pkg/shared/config"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	path := ""
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	bindings, err := config.LoadBindings(path)
	if err != nil {
		log.Fatal(err)
	}
	if path != "" {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := config.SaveBindings(path, bindings); err != nil {
				log.Fatal(err)
			}
			log.Printf("wrote default bindings to %s", path)
		}
	}

	actions := make([]string, 0, len(bindings))
	for action := range bindings {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	for _, action := range actions {
		b := bindings[action]
		keys := make([]string, 0, len(b.Keyboard))
		for _, name := range b.Keyboard {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(name)); err != nil {
				keys = append(keys, name+"(?)")
				continue
			}
			keys = append(keys, fmt.Sprintf("%s(%d)", k, k))
		}
		fmt.Printf("%-14s keys: %-24s pad: %s\n", action, strings.Join(keys, " "), strings.Join(b.Gamepad, " "))
	}
}
