// Command carol prints the twelve days of the carol. It accepts the same
// flags as "drills carol".
package main

import (
	"context"
	"os"

	"github.com/agbru/drills/internal/app"
)

func main() {
	args := append([]string{"carol"}, os.Args[1:]...)
	os.Exit(app.Execute(context.Background(), args, os.Stdin, os.Stdout, os.Stderr))
}
