package main

import (
	_ "embed"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tomz197/dodger/internal/config"
	"github.com/tomz197/dodger/internal/world"
)

//go:embed index.html
var htmlPage string

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "web"})
	settings := config.Load()

	http.Handle("/", landingHandler(settings.DisplayHost, settings.SSHPort))

	addr := net.JoinHostPort(settings.WebHost, settings.WebPort)
	logger.Info("starting web server", "addr", "http://"+addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		logger.Fatal("server error", "err", err)
	}
}

func landingHandler(sshHost, sshPort string) http.HandlerFunc {
	page := strings.NewReplacer(
		"{{.Title}}", world.Title,
		"{{.SSHHost}}", sshHost,
		"{{.SSHPort}}", sshPort,
	).Replace(htmlPage)

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	}
}
