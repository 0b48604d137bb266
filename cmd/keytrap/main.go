// keytrap demo: registers global hotkeys given on the command line and logs
// every time one fires, no matter which window has focus.
package main

import (
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/getlantern/systray"
	"github.com/rs/zerolog"

	"keytrap"
)

var (
	hotkeyList = flag.String("hotkeys", "Ctrl+Shift+F7",
		`comma-separated hotkeys to register, e.g. "Ctrl+Shift+F7,Alt+KeyP"`)
	resolveKeys = flag.Bool("resolve", false,
		"log the character each registered key produces under the active layout")
	useTray = flag.Bool("tray", true,
		"show a system tray icon with a quit item")
)

func main() {
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()
	keytrap.SetLogger(log.With().Str("component", "keytrap").Logger())

	hook, err := keytrap.New(keytrap.NoConsume)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start the capture engine")
	}
	defer hook.Close()

	for _, spec := range strings.Split(*hotkeyList, ",") {
		spec = strings.TrimSpace(spec)
		if spec == "" {
			continue
		}

		hotkey, err := keytrap.ParseHotkey(spec)
		if err != nil {
			log.Fatal().Err(err).Msg("Bad -hotkeys value")
		}

		if err := hook.Register(hotkey, func() {
			log.Info().Stringer("hotkey", hotkey).Msg("Hotkey fired")
		}); err != nil {
			log.Fatal().Err(err).Stringer("hotkey", hotkey).Msg("Failed to register hotkey")
		}
		log.Info().Stringer("hotkey", hotkey).Msg("Registered hotkey")

		if *resolveKeys {
			if text, ok := hook.TryResolve(hotkey.KeyCode); ok {
				log.Info().
					Stringer("key", hotkey.KeyCode).
					Str("produces", text).
					Msg("Resolved key under active layout")
			}
		}
	}

	if *useTray {
		runTray(log)
		return
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	log.Info().Msg("Shutting down")
}

// runTray blocks in the systray event loop until Quit is clicked.
func runTray(log zerolog.Logger) {
	onReady := func() {
		systray.SetTitle("keytrap")
		systray.SetTooltip("Global hotkey demo")

		quit := systray.AddMenuItem("Quit", "Stop capturing and exit")
		go func() {
			<-quit.ClickedCh
			systray.Quit()
		}()
	}
	onExit := func() {
		log.Info().Msg("Shutting down")
	}
	systray.Run(onReady, onExit)
}
