package cmd

import (
	"log"

	"github.com/ipchama/dstorm/config"
	"github.com/ipchama/dstorm/hammer"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
)

func prepareCmd(cmd *cobra.Command) *cobra.Command {
	cmd.Flags().Int("workers", 0, "Number of sending workers. 0 == two per logical core.")
	cmd.Flags().Int("maxlife", 0, "How long to run (seconds). 0 == until interrupted.")
	cmd.Flags().Int("stats-rate", config.DefaultStatsRate, "How frequently to report stats. (seconds).")

	cmd.Flags().String("interface", "", "Interface to send from. Empty == let the kernel route the broadcast.")
	cmd.Flags().Int("target-port", 67, "Target port for special cases.  Rarely would you want to use this.")

	cmd.Flags().String("api-address", "", "IP for the API server to listen on.")
	cmd.Flags().Int("api-port", 0, "Port for the API server to listen on. 0 == no API server.")

	cmd.Flags().String("log-file", "", "Write logs to a rotated file instead of stderr.")

	return cmd
}

func init() {

	rootCmd.AddCommand(prepareCmd(&cobra.Command{
		Use:          "dhcpv4",
		Short:        "Run a dhcpv4 discover load test.",
		Long:         `Broadcast DHCPDISCOVERs from a pool of pre-built packets as fast as the workers can send them.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {

			options := config.NewDhcpV4Options()
			socketeerOptions := config.NewSocketeerOptions()

			options.Workers = getVal(cmd.Flags().GetInt("workers")).(int)
			options.MaxLifetime = getVal(cmd.Flags().GetInt("maxlife")).(int)
			options.StatsRate = getVal(cmd.Flags().GetInt("stats-rate")).(int)

			socketeerOptions.InterfaceName = getVal(cmd.Flags().GetString("interface")).(string)
			socketeerOptions.TargetPort = getVal(cmd.Flags().GetInt("target-port")).(int)

			apiAddress := getVal(cmd.Flags().GetString("api-address")).(string)
			apiPort := getVal(cmd.Flags().GetInt("api-port")).(int)

			if logFile := getVal(cmd.Flags().GetString("log-file")).(string); logFile != "" {
				log.SetOutput(&lumberjack.Logger{
					Filename:   logFile,
					MaxSize:    100,
					MaxBackups: 3,
				})
			}

			if options.Workers <= 0 {
				options.Workers = defaultWorkerCount()
			}

			if options.StatsRate <= 0 {
				options.StatsRate = config.DefaultStatsRate
			}

			if socketeerOptions.InterfaceName != "" {
				if err := checkInterface(socketeerOptions.InterfaceName); err != nil {
					return err
				}
			}

			h := hammer.New(socketeerOptions, options)

			if err := h.Init(apiAddress, apiPort); err != nil {
				return err
			}

			gHammer.Store(h)

			return h.Run()
		},
	}))

}
