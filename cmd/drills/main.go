package main

import (
	"context"
	"os"

	"github.com/agbru/drills/internal/app"
)

func main() {
	exitCode := app.Execute(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	os.Exit(exitCode)
}
