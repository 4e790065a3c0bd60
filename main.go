package main

import (
	"flag"
	"fmt"
	"guardian/internal/di"
	"guardian/internal/structures"
	"os"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	debug := flag.Bool("debug", false, "log to console as well as files")
	flag.Parse()

	flags := &structures.CliFlags{
		ConfigPath: *configPath,
		DebugMode:  *debug,
	}

	if _, err := di.InitApp(flags); err != nil {
		fmt.Fprintf(os.Stderr, "guardian: %s\n", err)
		os.Exit(1)
	}
}
