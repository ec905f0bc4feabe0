package main

import (
	"context"
	"os"

	"github.com/willbeason/flowering-tree/internal/cli"
)

func main() {
	ctx := context.Background()

	err := cli.NewRootCommand().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
