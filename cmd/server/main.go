package main

import (
	"flag"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/Andres-Briones/NablaPoker/internal/config"
	"github.com/Andres-Briones/NablaPoker/internal/mux"
	"github.com/Andres-Briones/NablaPoker/pkg/room"
	"github.com/Andres-Briones/NablaPoker/pkg/table"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", "", "the listen address (overrides the configuration)")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()

	listenAddr := cfg.ListenAddr
	if *addr != "" {
		listenAddr = *addr
	}

	registry := room.NewRegistry(logrus.StandardLogger(), room.RegistryOptions{
		HistoryPath: cfg.HandHistory.Path,
		SiteName:    cfg.Site.Name,
		NetworkName: cfg.Site.Network,
		Version:     Version,
		Defaults: table.Options{
			Name:       cfg.Table.Name,
			Size:       cfg.Table.Size,
			SmallBlind: cfg.Table.SmallBlind,
			BigBlind:   cfg.Table.BigBlind,
		},
	})

	c := cors.New(cors.Options{
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With", "Authorization"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
	})

	srv := &http.Server{
		Addr:         listenAddr,
		Handler:      loggingHandler(c.Handler(mux.NewMux(Version, registry))),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logrus.WithField("addr", srv.Addr).Info("listening")
	logrus.Fatal(srv.ListenAndServe())
}

func loggingHandler(next http.Handler) http.Handler {
	if config.Instance().Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
