package main

import (
	"context"
	"log"

	"github.com/locvowork/payroll_reconciliation/internal/bootstrap"
	"github.com/locvowork/payroll_reconciliation/internal/logger"
)

func main() {
	ctx := context.Background()

	app := bootstrap.NewApp()
	if err := app.Initialize(ctx); err != nil {
		log.Fatal(err)
	}

	if err := app.Run(); err != nil {
		logger.ErrorLog(ctx, "Server stopped", err)
		log.Fatal(err)
	}
}
