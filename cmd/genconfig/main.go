package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/joho/godotenv"

	"github.com/devfolio/devfolio-backend/pkg/config"
	"github.com/devfolio/devfolio-backend/pkg/logger"
)

// unitTemplate is the systemd service unit for the API binary. Worker and
// thread counts come from the validated server config.
const unitTemplate = `[Unit]
Description=Devfolio API server
After=network-online.target postgresql.service
Wants=network-online.target

[Service]
Type=simple
User={{ .User }}
WorkingDirectory={{ .WorkingDir }}
{{- if .EnvFile }}
EnvironmentFile={{ .EnvFile }}
{{- end }}
ExecStart={{ .Binary }}
Restart=on-failure
RestartSec=5
Environment=GOMAXPROCS={{ .Threads }}
{{- if ne .AccessLog "-" }}
StandardOutput=append:{{ .AccessLog }}
{{- end }}
{{- if ne .ErrorLog "-" }}
StandardError=append:{{ .ErrorLog }}
{{- end }}
LimitNOFILE=65536

# {{ .Workers }} instance(s); scale with systemd templates when >1
[Install]
WantedBy=multi-user.target
`

type unitData struct {
	User       string
	WorkingDir string
	EnvFile    string
	Binary     string
	Workers    int
	Threads    int
	AccessLog  string
	ErrorLog   string
}

func main() {
	logg := logger.New(logger.Options{ServiceName: "genconfig"})

	_ = godotenv.Load()

	out := flag.String("out", "-", "output path for the unit file (- for stdout)")
	binary := flag.String("binary", "/usr/local/bin/devfolio-api", "path of the installed API binary")
	user := flag.String("user", "devfolio", "system user the service runs as")
	workDir := flag.String("workdir", "/var/lib/devfolio", "service working directory")
	envFile := flag.String("env-file", "/etc/devfolio/api.env", "EnvironmentFile path (empty to omit)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	data := unitData{
		User:       *user,
		WorkingDir: *workDir,
		EnvFile:    *envFile,
		Binary:     *binary,
		Workers:    cfg.Server.Workers,
		Threads:    cfg.Server.Threads,
		AccessLog:  cfg.Server.AccessLog,
		ErrorLog:   cfg.Server.ErrorLog,
	}

	tmpl, err := template.New("unit").Parse(unitTemplate)
	if err != nil {
		logg.Error(context.Background(), "failed to parse unit template", err)
		os.Exit(1)
	}

	if *out == "-" {
		if err := tmpl.Execute(os.Stdout, data); err != nil {
			logg.Error(context.Background(), "failed to render unit", err)
			os.Exit(1)
		}
		return
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		logg.Error(context.Background(), "failed to create output directory", err)
		os.Exit(1)
	}

	f, err := os.Create(*out)
	if err != nil {
		logg.Error(context.Background(), "failed to create output file", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		logg.Error(context.Background(), "failed to render unit", err)
		os.Exit(1)
	}

	fmt.Println("wrote unit file:", *out)
}
