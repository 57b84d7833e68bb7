package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/urna/internal/station/cli"
	"github.com/dmitrijs2005/urna/internal/station/config"
)

func main() {

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

	app.Run(context.Background())
}
