package main

import (
	"context"
	"os"

	"github.com/dmitrijs2005/spinup/internal/buildinfo"
	"github.com/dmitrijs2005/spinup/internal/cli"
	"github.com/dmitrijs2005/spinup/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app := cli.NewApp(cfg)

	os.Exit(app.Run(ctx))
}
