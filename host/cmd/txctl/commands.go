package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the firmware version",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLine("v")
	},
}

var identCmd = &cobra.Command{
	Use:   "ident",
	Short: "Print the station identification",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLine("@")
	},
}

var freqCmd = &cobra.Command{
	Use:   "freq <MHz>",
	Short: "Set the transmit frequency in MHz",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Validate locally for a friendlier error; the firmware
		// enforces the band limits either way.
		mhz, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("not a frequency: %q", args[0])
		}
		if mhz < 3.5 || mhz > 4.0 {
			return fmt.Errorf("frequency %s MHz outside the 3.5 to 4.0 MHz band", args[0])
		}
		return runLine("f" + args[0])
	},
}

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Interactive console session with the firmware",
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := dial()
		if err != nil {
			return err
		}
		defer conn.Close()

		fmt.Println("Connected. Enter protocol lines ('h' for firmware help, 'quit' to exit).")
		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				return scanner.Err()
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if line == "quit" || line == "exit" || line == "q" {
				return nil
			}
			reply, err := conn.exchange(line)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			fmt.Print(reply)
		}
	},
}

// runLine opens the port, performs one command exchange and prints the
// reply.
func runLine(line string) error {
	conn, err := dial()
	if err != nil {
		return err
	}
	defer conn.Close()

	reply, err := conn.exchange(line)
	if err != nil {
		return err
	}
	fmt.Print(reply)
	return nil
}
