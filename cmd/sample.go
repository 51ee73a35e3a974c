package cmd

import (
	"fmt"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/ipchama/dstorm/generator"
	"github.com/spf13/cobra"
)

func init() {

	sampleCmd := &cobra.Command{
		Use:          "sample",
		Short:        "Print one generated DHCPDISCOVER.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {

			summary := getVal(cmd.Flags().GetBool("summary")).(bool)

			pool, err := generator.NewPool(1)
			if err != nil {
				return err
			}

			pool.Initialize(generator.NewIdentity(time.Now().UnixNano()))
			r := pool.At(0)

			if summary {
				d, err := r.Decode()
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), d.Summary())
				return nil
			}

			p := gopacket.NewPacket(r.Bytes(), layers.LayerTypeDHCPv4, gopacket.Default)

			if errLayer := p.ErrorLayer(); errLayer != nil {
				return errLayer.Error()
			}

			fmt.Fprint(cmd.OutOrStdout(), p.Dump())
			return nil
		},
	}

	sampleCmd.Flags().Bool("summary", false, "Print a DHCP summary instead of the layer dump.")

	rootCmd.AddCommand(sampleCmd)
}
