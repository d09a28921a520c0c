package main

import (
	"context"
	"log"

	"github.com/thinkful-ei23/jon-noteful-v3/internal/server"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(ctx, cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
