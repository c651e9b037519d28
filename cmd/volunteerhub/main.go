package main

import (
	"context"
	"fmt"
	"os"

	"github.com/goserg/volunteerhub/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}
