package main

import (
	"context"
	"log"
	"os"

	"petconnect-api/internal"
)

func main() {
	ctx := context.Background()

	app, err := internal.NewApp(ctx)
	if err != nil {
		log.Fatalf("init app failed: %v", err)
	}
	defer app.Close()

	if err = app.InitControllers(); err != nil {
		app.Logger().Sugar().Errorf("init controllers failed: %v", err)
		app.Close()
		os.Exit(1)
	}

	if err = app.Run(ctx); err != nil {
		app.Logger().Sugar().Errorf("petconnectapi stopped with error: %v", err)
		app.Close()
		os.Exit(1)
	}
}
