package client

import (
	"context"
	"errors"
	"image/color"
	"log"

	"grimoire/pkg/character"
	"grimoire/pkg/client/assets"
	"grimoire/pkg/client/gui"
	"grimoire/pkg/client/systems"
	"grimoire/pkg/client/text"
	"grimoire/pkg/client/world"
	"grimoire/pkg/input"
	"grimoire/pkg/network"
	"grimoire/pkg/shared/config"
	"grimoire/pkg/storage"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Options configure one client session.
type Options struct {
	Profile    string
	Store      *storage.Store
	Bindings   config.Bindings
	Language   string
	Context    gui.Context
	ScriptAddr string // websocket URL, empty disables the script console
}

type Game struct {
	opts    Options
	core    *character.Core
	world   *world.Interface
	console *network.Console
	cancel  context.CancelFunc

	// Systems
	InputSystem  *systems.InputSystem
	RenderSystem *systems.RenderSystem

	showHelp bool
}

func NewGame(opts Options) (*Game, error) {
	assets.Load()

	data, found, err := opts.Store.LoadProfile(opts.Profile)
	if err != nil {
		return nil, err
	}
	if !found {
		log.Printf("Profile %s not found, starting a new character", opts.Profile)
	}

	catalog, err := text.Builtin()
	if err != nil {
		return nil, err
	}
	if opts.Language != "" {
		log.Printf("Language: %s", catalog.SetLanguage(opts.Language))
	}

	state := input.NewState()
	inputSystem, err := systems.NewInputSystem(state, opts.Bindings)
	if err != nil {
		return nil, err
	}

	g := &Game{
		opts:         opts,
		core:         character.NewCore(data),
		InputSystem:  inputSystem,
		RenderSystem: systems.NewRenderSystem(),
		showHelp:     true,
	}
	env := gui.Env{Input: state, Text: catalog, Sound: assets.NewSounds()}
	g.world = world.NewInterface(env, g.core, opts.Context)

	if opts.ScriptAddr != "" {
		ctx, cancel := context.WithCancel(context.Background())
		g.cancel = cancel
		g.console = network.NewConsole(opts.ScriptAddr)
		g.world.SetConsole(g.console)
		go func() {
			if err := g.console.Run(ctx); err != nil {
				log.Printf("Script console stopped: %v", err)
			}
		}()
	}
	return g, nil
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.Close()
		return ebiten.Termination
	}

	g.InputSystem.Update()
	g.world.Update(1 / float64(ebiten.TPS()))
	if g.world.AnyOpen() {
		g.showHelp = false
	}
	return nil
}

// Close saves the character and stops the script console.
func (g *Game) Close() {
	if g.cancel != nil {
		g.cancel()
	}
	if err := g.opts.Store.SaveProfile(g.opts.Profile, g.core.Snapshot()); err != nil {
		log.Printf("Failed to save profile %s: %v", g.opts.Profile, err)
		return
	}
	log.Printf("Profile %s saved", g.opts.Profile)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 20, G: 30, B: 40, A: 255})

	g.RenderSystem.Begin(screen)
	g.world.Draw(g.RenderSystem)

	if g.showHelp {
		ebitenutil.DebugPrintAt(screen, "I: inventory   M: spellbook   Esc: close", 20, config.ScreenHeight-24)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// Run opens the window and blocks until it is closed.
func Run(g *Game) error {
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Grimoire")
	ebiten.SetWindowClosingHandled(true)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
