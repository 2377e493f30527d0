package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/dermasight/internal/buildinfo"
	"github.com/dmitrijs2005/dermasight/internal/client/cli"
	"github.com/dmitrijs2005/dermasight/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Printf("%v", err)
		os.Exit(2)
	}

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
