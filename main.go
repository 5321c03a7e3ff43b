package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/qw4990/SynthDataGen/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := cmd.Execute(ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
