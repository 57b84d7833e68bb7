package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/urna/internal/tallier"
	"github.com/dmitrijs2005/urna/internal/tallier/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := tallier.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}
}
