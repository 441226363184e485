package main

import (
	"github.com/chetan1913051012-sudo/effective-system/config"
	"github.com/chetan1913051012-sudo/effective-system/internal/app"
	"github.com/chetan1913051012-sudo/effective-system/pkg/sigctx"
)

func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()
	cfg.Print()

	session := app.New(sigCtx, cfg)

	session.Run()

	<-sigCtx.Done()

	session.Close()
}
