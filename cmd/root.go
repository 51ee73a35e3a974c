package cmd

import (
	"os"
	"sync/atomic"

	"github.com/ipchama/dstorm/hammer"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dstorm",
	Short: "DHCPv4 discover load generator.",
	Long:  `Dstorm floods the local broadcast domain with DHCPDISCOVERs from randomized clients to load-test DHCP servers.`,
}

var gHammer atomic.Pointer[hammer.Hammer]

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Stop stops the running hammer, or exits if there isn't one yet.
func Stop() {
	if h := gHammer.Load(); h != nil {
		h.Stop()
		return
	}

	os.Exit(0)
}
