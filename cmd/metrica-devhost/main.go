package main

import (
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"

	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"
	"github.com/toqueteos/webbrowser"
	webview "github.com/webview/webview_go"

	"github.com/metrica-go/metrica"
	"github.com/metrica-go/metrica/internal/bridge"
	"github.com/metrica-go/metrica/internal/config"
	"github.com/metrica-go/metrica/internal/handlers"
	"github.com/metrica-go/metrica/internal/linking"
	"github.com/metrica-go/metrica/internal/logger"
	"github.com/metrica-go/metrica/internal/router"
	"github.com/metrica-go/metrica/internal/store"
	"github.com/metrica-go/metrica/internal/ws"
)

func main() {
	app := kingpin.New("metrica-devhost", "Inspect the analytics calls an app makes, without a native SDK.")
	browser := app.Flag("browser", "Open the inspector in the system browser instead of a window").Bool()
	listen := app.Flag("listen", "Inspector listen address").Default("127.0.0.1:0").String()
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to read .env: %v", err)
	}

	slogger := logger.New(logger.Options{Level: logger.LevelFromEnv(slog.LevelDebug)})

	cfg, err := config.Load()
	if err != nil {
		slogger.Error("failed to generate config", "err", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		slogger.Error("failed to create data directory", "err", err)
		os.Exit(1)
	}

	db, err := store.Open(cfg.DataDir, slogger)
	if err != nil {
		slogger.Error("failed to open identifier store", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	hub := ws.NewHub(slogger)
	rec := bridge.NewRecorder()
	rec.OnCall = func(c bridge.Call) {
		data, err := json.Marshal(c)
		if err != nil {
			slogger.Warn("failed to encode call", "method", c.Method, "err", err)
			return
		}
		hub.Broadcast(handlers.CallsTopic, data)
	}
	bridge.Register(rec, rec)

	links := linking.NewSource(cfg.InitialURL)
	m, err := metrica.FromRegistry(
		metrica.WithLogger(slogger),
		metrica.WithLinker(links),
		metrica.WithIdentifierStore(db),
	)
	if err != nil {
		slogger.Error("bridge not available", "err", err)
		os.Exit(1)
	}

	if cfg.Activation.APIKey == "" {
		slogger.Warn("no api key configured, activating with an empty key")
	}
	if err := m.Activate(cfg.Activation); err != nil {
		slogger.Error("activation failed", "err", err)
		os.Exit(1)
	}

	for name, key := range cfg.ReporterKeys {
		if _, err := m.Reporter(key); err != nil {
			slogger.Warn("failed to prepare reporter", "reporter", name, "err", err)
		}
	}

	h := handlers.New(m, rec, links, db, hub, slogger)
	mux := router.New(h)

	listener, err := net.Listen("tcp", *listen)
	if err != nil {
		log.Fatal(err)
	}

	addr := fmt.Sprintf("http://%s", listener.Addr())
	slogger.Info("inspector starting", "addr", addr)

	go func() {
		if err := http.Serve(listener, mux); err != nil {
			log.Fatal(err)
		}
	}()

	if *browser {
		if err := webbrowser.Open(addr); err != nil {
			slogger.Warn("failed to open browser", "addr", addr, "err", err)
		}
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt)
		<-stop
		slogger.Info("interrupted, shutting down")
		return
	}

	w := webview.New(true)
	defer w.Destroy()
	w.SetTitle("metrica inspector")
	w.SetSize(1040, 768, webview.HintMin)
	w.Navigate(addr)
	w.Bind("openExternal", func(url string) error {
		return webbrowser.Open(url)
	})
	w.Run()

	slogger.Info("window closed, shutting down")
}
