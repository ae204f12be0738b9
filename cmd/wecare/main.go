package main

import (
	"context"
	"log"

	"github.com/wecareapp/driveclient/internal/client/cli"
	"github.com/wecareapp/driveclient/internal/client/config"
)

func main() {

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())

}
