package main

import (
	_ "embed"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tomz197/asshpong/internal/config"
)

//go:embed index.html
var htmlPage string

func main() {
	cfg, err := config.LoadWeb()
	if err != nil {
		config.Exitf("config: %v", err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "web"})
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	page := renderPage(cfg)
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "path", r.URL.Path, "remote", r.RemoteAddr)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	})

	addr := net.JoinHostPort(cfg.Host, cfg.Port)
	logger.Info("Starting web server", "url", "http://"+addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		logger.Fatal("server error", "err", err)
	}
}

// renderPage fills the connection instructions into the landing page.
func renderPage(cfg config.Web) string {
	return strings.NewReplacer(
		"{{.SSHHost}}", cfg.DisplayHost,
		"{{.SSHCommand}}", cfg.SSHCommand(),
	).Replace(htmlPage)
}
