// Command plusone prints the plus-one demonstration for x = 5, or for the
// integer given as its only argument.
package main

import (
	"context"
	"os"

	"github.com/agbru/drills/internal/app"
)

func main() {
	args := append([]string{"plusone"}, os.Args[1:]...)
	os.Exit(app.Execute(context.Background(), args, os.Stdin, os.Stdout, os.Stderr))
}
