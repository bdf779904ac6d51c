package exiftool

import (
	"context"
	"errors"
	"io"
	"sync"

	"exifview/internal/logger"
)

// Reporter receives failures that end the session, as soon as they happen.
type Reporter interface {
	Report(err error)
}

// ReporterFunc adapts a plain function to Reporter.
type ReporterFunc func(err error)

func (f ReporterFunc) Report(err error) { f(err) }

type Runner struct {
	spawner  Spawner
	reporter Reporter
	logger   logger.Logger

	// OnSettled, when set, is called once per command after its output has
	// been fully read. Calls come from the command's own goroutine.
	OnSettled func(index int)
}

func NewRunner(spawner Spawner, reporter Reporter, log logger.Logger) *Runner {
	if spawner == nil {
		spawner = ExecSpawner{}
	}
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Runner{
		spawner:  spawner,
		reporter: reporter,
		logger:   log,
	}
}

// Run spawns every command concurrently and returns their aggregated stdout,
// results[i] belonging to commands[i]. It returns once every command has
// settled. A command that fails to start is reported immediately, settles as
// "" and does not affect its siblings; the returned error joins those
// already-reported failures.
func (r *Runner) Run(ctx context.Context, commands [][]string) ([]string, error) {
	results := make([]string, len(commands))
	if len(commands) == 0 {
		return results, nil
	}

	var (
		wg       sync.WaitGroup
		failures []error
	)

	for i, argv := range commands {
		proc, err := r.spawner.Spawn(ctx, argv)
		if err != nil {
			spawnErr := &SpawnError{Index: i, Argv: argv, Err: err}
			r.logger.Error("Runner", spawnErr, map[string]interface{}{
				"index":     i,
				"not_found": errors.Is(err, ErrToolNotFound),
			})
			if r.reporter != nil {
				r.reporter.Report(spawnErr)
			}
			failures = append(failures, spawnErr)
			r.settled(i)
			continue
		}

		r.logger.Debug("Runner", "command spawned", map[string]interface{}{
			"index": i,
			"argv":  argv,
		})

		wg.Add(1)
		go func(index int, proc Process) {
			defer wg.Done()
			results[index] = r.drain(index, proc)
			r.settled(index)
		}(i, proc)
	}

	wg.Wait()

	r.logger.Debug("Runner", "all commands settled", map[string]interface{}{
		"commands": len(commands),
		"failed":   len(failures),
	})

	return results, errors.Join(failures...)
}

func (r *Runner) drain(index int, proc Process) string {
	output, readErr := Collect(Lines(proc.Stdout()))
	if readErr != nil {
		r.logger.Warning("Runner", "output stream ended early", map[string]interface{}{
			"index": index,
			"error": readErr.Error(),
		})
		// keep the pipe flowing so the process can exit
		_, _ = io.Copy(io.Discard, proc.Stdout())
	}

	if err := proc.Wait(); err != nil {
		// exiftool exits non-zero for unreadable inputs; the transformer
		// decides whether the output is usable.
		r.logger.Debug("Runner", "command exited with error", map[string]interface{}{
			"index": index,
			"error": err.Error(),
		})
	}

	return output
}

func (r *Runner) settled(index int) {
	if r.OnSettled != nil {
		r.OnSettled(index)
	}
}
