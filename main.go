package main

import (
	"context"
	"os"

	"github.com/m-mizutani/prdesc/pkg/cli"
)

func main() {
	os.Exit(cli.Run(context.Background(), os.Args))
}
