package main

import (
	"context"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"

	"github.com/setavenger/neon-desktop/internal/controller"
	"github.com/setavenger/neon-desktop/internal/gui"
	"github.com/setavenger/neon-desktop/internal/logging"
	"github.com/setavenger/neon-desktop/internal/setup"
)

var (
	dataDir       string
	storeBackend  string
	nativeDialogs bool
	debug         bool
)

func init() {
	pflag.BoolVar(&debug, "debug", false, "enable debug logging")
	pflag.StringVar(&dataDir, "datadir", "", "path to data directory for Neon Desktop")
	pflag.StringVar(&storeBackend, "backend", "", "settings store backend (bolt, leveldb, file, memory)")
	pflag.BoolVar(&nativeDialogs, "native-dialogs", false, "use the operating system file dialogs")
	pflag.Parse()
}

func main() {
	opts := setup.Options{DataDir: dataDir, StoreBackend: storeBackend}
	if debug {
		opts.LogLevel = "debug"
	}
	env, err := setup.Open(opts)
	if err != nil {
		logging.L.Err(err).Msg("failed to start")
		os.Exit(1)
	}
	defer func() {
		if err := env.Store.Close(); err != nil {
			logging.L.Err(err).Msg("failed to close store")
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	myApp := app.New()
	myApp.SetIcon(theme.SettingsIcon())

	mainWindow := myApp.NewWindow("Neon Desktop")
	mainWindow.Resize(fyne.NewSize(800, 600))
	mainWindow.CenterOnScreen()

	dialogs := gui.NewDialogs(mainWindow)
	var files controller.FileDialogs = dialogs
	if nativeDialogs || env.Config.NativeDialogs {
		files = gui.NativeDialogs{}
	}

	ctrl, err := controller.New(controller.Deps{
		Store:    env.Store,
		State:    env.State,
		FS:       afero.NewOsFs(),
		Dialogs:  files,
		Notices:  dialogs,
		Modals:   dialogs,
		Defaults: env.Defaults,
	})
	if err != nil {
		logging.L.Err(err).Msg("failed to create controller")
		return
	}
	ctrl.Start(ctx)

	mainGUI := gui.NewMainGUI(ctx, myApp, mainWindow, ctrl, env.State)
	gui.NewTrayManager(myApp, mainWindow, mainGUI)
	mainWindow.SetContent(mainGUI.GetContent())

	mainWindow.ShowAndRun()
}
