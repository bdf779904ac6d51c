package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"exifview/internal/config"
	"exifview/internal/exiftool"
	"exifview/internal/logger"
	"exifview/internal/shutdown"
	"exifview/internal/ui/builder"
)

const (
	AppName    = "EXIF Viewer"
	AppID      = "io.github.exifview"
	AppVersion = "1.0.0"
)

func main() {
	var (
		configPath = flag.String("config", config.DefaultPath(), "path to an optional properties file")
		dump       = flag.Bool("dump", false, "print metadata tables to stdout instead of opening a window")
		color      = flag.Bool("color", false, "colour the -dump tables")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] file...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration: %v\n", err)
		os.Exit(2)
	}

	log := logger.New(cfg.LogLevel, cfg.JSONLogs)
	log.Info("Main", "starting", map[string]interface{}{
		"version": AppVersion,
		"files":   flag.NArg(),
		"tool":    cfg.ExifToolPath,
		"dump":    *dump,
	})

	shutdownManager := shutdown.NewManager(log)
	shutdownManager.Listen()

	if *dump {
		code := runDump(shutdownManager, cfg, log, flag.Args(), *color)
		shutdownManager.Shutdown("dump finished")
		os.Exit(code)
	}

	if err := runGUI(shutdownManager, cfg, log, flag.Args()); err != nil {
		if errors.Is(err, builder.ErrConstruction) {
			log.Fatal("Main", err, nil)
		}
		log.Error("Main", err, nil)
		os.Exit(1)
	}
}

func commands(cfg config.Config, files []string) [][]string {
	return exiftool.Commands(cfg.ExifToolPath, cfg.ExifToolArgs, files)
}
