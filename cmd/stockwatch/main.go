package main

import (
	"fmt"
	"os"

	"stockwatch/cmd/stockwatch/cmd"
	"stockwatch/internal/config"
	"stockwatch/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}

	closeLog, err := logging.Setup(cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "could not open log file:", err)
		os.Exit(1)
	}
	defer closeLog()

	cmd.Config = cfg
	cmd.Execute()
}
