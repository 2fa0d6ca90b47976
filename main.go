package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/golangdaddy/kart/catalog"
	"github.com/golangdaddy/kart/console"
	"github.com/golangdaddy/kart/game"
	"github.com/golangdaddy/kart/models"
	"github.com/golangdaddy/kart/surface"
	"github.com/golangdaddy/kart/ui"
)

const appName = "kart"

var (
	configFlag = flag.String("config", "", "config file (.yaml, .yml or .ini)")
	hostFlag   = flag.String("host", "", "where to play: terminal or window (remembered)")
	seedFlag   = flag.Uint64("seed", 0, "track seed, 0 picks one from the clock")
	glyphFlag  = flag.String("glyph", "", "car character (remembered)")
	logFlag    = flag.String("log", "kart.log", "log file, empty to discard logs")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [list | <game> play | <game> help]\n", appName)
		flag.PrintDefaults()
	}
	flag.Parse()

	closeLog, err := setupLog(*logFlag)
	if err != nil {
		fatal(err)
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		fatal(err)
	}

	var playErr error
	registry := catalog.NewRegistry()
	registry.Register("mario", "Race",
		func() { playErr = play(cfg) },
		func() { console.PrintHelp(os.Stdout) })

	args := flag.Args()
	if len(args) == 0 {
		args = []string{"mario", catalog.CommandPlay}
	}
	if args[0] == "list" {
		console.PrintCatalog(os.Stdout, registry.List())
		return
	}

	if err := registry.Dispatch(args); err != nil {
		fatal(err)
	}
	if playErr != nil {
		fatal(playErr)
	}
}

// setupLog sends the log to a file because the terminal host owns stdout
func setupLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}

// loadConfig layers the config file, remembered settings and flags
func loadConfig() (*models.Config, error) {
	cfg, err := models.LoadConfig(*configFlag)
	if err != nil {
		return nil, err
	}

	store, err := models.OpenSettingsStore(appName)
	if err != nil {
		log.Printf("[Main] Warning: %v (settings will not be remembered)", err)
	}
	store.Settings().Apply(cfg)

	remember := false
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "host":
			cfg.Host = *hostFlag
			remember = true
		case "glyph":
			cfg.Glyph = *glyphFlag
			remember = true
		case "seed":
			cfg.Seed = *seedFlag
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if remember {
		store.Update(models.Settings{Host: cfg.Host, Glyph: cfg.Glyph})
		if err := store.Save(); err != nil {
			log.Printf("[Main] Warning: %v", err)
		}
	}
	return cfg, nil
}

func play(cfg *models.Config) error {
	log.Printf("[Main] Playing on %s host", cfg.Host)
	if cfg.Host == models.HostWindow {
		return playWindow(cfg)
	}
	return playTerminal(cfg)
}

func playTerminal(cfg *models.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialise terminal screen: %w", err)
	}

	sched := game.NewTickerScheduler()
	race := game.NewRace(cfg, surface.NewTerminal(screen), sched, game.NewSystemClock(), newRand(cfg.Seed))

	done := make(chan struct{})
	race.OnFinish(func(game.Result) { close(done) })
	race.Start()

	surface.RunTerminal(screen, race.HandleKey, done)

	sched.Stop()
	screen.Fini()
	report(race)
	return nil
}

func playWindow(cfg *models.Config) error {
	// Room for the tier digit and the finish text
	grid := surface.NewGrid(max(cfg.Width+3, 28), cfg.Height+1)

	sched := game.NewTickerScheduler()
	defer sched.Stop()
	race := game.NewRace(cfg, grid, sched, game.NewSystemClock(), newRand(cfg.Seed))

	done := make(chan struct{})
	race.OnFinish(func(game.Result) { close(done) })
	race.Start()

	if err := ui.RunWindow(ui.NewWindow(grid, race.HandleKey, done), "Mario Kart", 3); err != nil {
		return fmt.Errorf("window closed with error: %w", err)
	}
	report(race)
	return nil
}

func report(race *game.Race) {
	if race.State() == game.StateFinished {
		r := race.Result()
		console.PrintSummary(os.Stdout, r.Seconds, r.Cycles)
		return
	}
	console.PrintAbandoned(os.Stdout, race.Cycle())
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("[Main] Track seed %d", seed)
	return rand.New(rand.NewPCG(seed, 0))
}

func fatal(err error) {
	log.Printf("[Main] Fatal: %v", err)
	fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
	os.Exit(1)
}
