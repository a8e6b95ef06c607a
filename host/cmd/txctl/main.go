package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	device  string
	baud    int
	timeout int
)

var rootCmd = &cobra.Command{
	Use:   "txctl",
	Short: "80 meter transmitter control console",
	Long: `Txctl talks to the 80 meter CW transmitter over its USB serial
console. Each subcommand sends one protocol line and prints the
firmware's reply.

The firmware protocol is single-letter commands terminated by CR or LF:
  v       firmware version
  h       firmware help
  f<MHz>  set transmit frequency (3.5 to 4.0 MHz)
  @       station identification`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&device, "device", "d", "/dev/ttyACM0", "Serial device path")
	rootCmd.PersistentFlags().IntVarP(&baud, "baud", "b", 115200, "Baud rate (ignored for USB CDC)")
	rootCmd.PersistentFlags().IntVarP(&timeout, "timeout", "t", 200, "Reply read timeout in milliseconds")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(identCmd)
	rootCmd.AddCommand(freqCmd)
	rootCmd.AddCommand(consoleCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
