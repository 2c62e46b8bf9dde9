// @title           walletguard API
// @version         1.0
// @description     Local API for key custody and transaction authorization.
// @BasePath        /
// @securityDefinitions.apikey  ShellToken
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/carlmjohnson/versioninfo"
)

var (
	version = "0.1.0-src"
	commit  = versioninfo.Short()
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
