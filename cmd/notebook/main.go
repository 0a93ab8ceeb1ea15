package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-notebook/internal/cli"
	"github.com/MKhiriev/go-notebook/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := cli.Execute(ctx, os.Args[1:], cli.Options{
		Connect:   cli.Connect(nil),
		BuildInfo: models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
	})

	stop()
	os.Exit(code)
}
