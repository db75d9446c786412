package main

import (
	"html/template"
	"net/http"
	"os"

	"github.com/tomz197/powerroids/internal/config"
	"github.com/tomz197/powerroids/internal/logging"
)

var page = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Powerroids</title>
<style>
body { background: #05050f; color: #e6e6e6; font-family: monospace; text-align: center; padding-top: 10vh; }
code { background: #1c1c2c; padding: 0.4em 0.8em; border-radius: 4px; font-size: 1.3em; }
</style>
</head>
<body>
<h1>POWERROIDS</h1>
<p>Fly, shoot and collect power-ups in your terminal.</p>
<p><code>ssh -t {{.Host}} -p {{.Port}}</code></p>
<p>Arrows or WASD to fly, SPACE to fire, - and = to change thrust, R to restart, Q to quit.</p>
</body>
</html>
`))

type pageData struct {
	Host string
	Port string
}

func main() {
	settings, err := config.Load(os.Getenv(config.PathEnv))
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger, err := logging.New(os.Stderr, settings.Log.Level, settings.Log.Format)
	if err != nil {
		os.Stderr.WriteString("logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	data := pageData{Host: settings.Web.DisplayHost, Port: settings.SSH.Port}
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := page.Execute(w, data); err != nil {
			logger.Error("rendering page", "err", err)
		}
	})

	logger.Info("starting web server", "addr", settings.Web.Addr())
	if err := http.ListenAndServe(settings.Web.Addr(), nil); err != nil {
		logger.Fatal("server error", "err", err)
	}
}
