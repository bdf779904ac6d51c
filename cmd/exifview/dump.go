package main

import (
	"os"

	"exifview/internal/config"
	"exifview/internal/exiftool"
	"exifview/internal/logger"
	"exifview/internal/metadata"
	"exifview/internal/report"
	"exifview/internal/shutdown"
	"exifview/internal/viewer"
)

// runDump extracts metadata for files and prints it as tables. It returns
// the process exit code.
func runDump(sm *shutdown.Manager, cfg config.Config, log *logger.ZerologAdapter, files []string, color bool) int {
	reporter := exiftool.ReporterFunc(func(err error) {
		title, message := viewer.Describe(err)
		log.Warning("Dump", title, map[string]interface{}{"detail": message})
	})

	progress := report.NewProgress(os.Stderr, len(files))
	runner := exiftool.NewRunner(exiftool.ExecSpawner{}, reporter, log)
	runner.OnSettled = progress.Settled

	outputs, err := runner.Run(sm.Context(), commands(cfg, files))
	progress.Finish()
	if err != nil {
		log.Error("Dump", err, map[string]interface{}{"files": len(files)})
		return 1
	}

	records, err := metadata.Transform(outputs)
	if err != nil {
		reporter.Report(err)
		return 1
	}

	report.Dump(os.Stdout, records, report.Options{Color: color})
	return 0
}
