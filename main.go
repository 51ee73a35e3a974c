package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/ipchama/dstorm/cmd"
)

func main() {

	osSigChann := make(chan os.Signal, 1)
	signal.Notify(osSigChann, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		for range osSigChann {
			cmd.Stop()
		}
	}()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
