package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/nguyentantai21042004/ytresumen/internal/cli"
	"github.com/nguyentantai21042004/ytresumen/internal/language"
)

func main() {
	// Setup graceful shutdown; a cancelled run still removes its workspace
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err := cli.Execute(ctx, os.Args[1:], language.Supported, &app{envFile: ".env"}, os.Stdout, os.Stderr)

	code := cli.ExitCode(err)
	if err != nil && ctx.Err() != nil {
		code = cli.ExitInterrupted
	}
	stop()
	os.Exit(code)
}
