package exiftool

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os/exec"
)

// Process is a started command whose stdout is still being produced.
type Process interface {
	Stdout() io.Reader
	Wait() error
}

// Spawner starts one command. Start failures are returned synchronously.
type Spawner interface {
	Spawn(ctx context.Context, argv []string) (Process, error)
}

// ExecSpawner runs real processes through os/exec.
type ExecSpawner struct{}

type execProcess struct {
	cmd    *exec.Cmd
	stdout io.ReadCloser
}

func (p *execProcess) Stdout() io.Reader { return p.stdout }

func (p *execProcess) Wait() error { return p.cmd.Wait() }

func (ExecSpawner) Spawn(ctx context.Context, argv []string) (Process, error) {
	if len(argv) == 0 {
		return nil, errors.New("empty argument vector")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("stdout pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrToolNotFound, argv[0])
		}
		return nil, err
	}

	return &execProcess{cmd: cmd, stdout: stdout}, nil
}

// DefaultArgs asks for one JSON document grouped by category, with a
// human-readable description next to every value.
var DefaultArgs = []string{"-json", "-long", "-g"}

// Command builds the argument vector for one input file.
func Command(tool string, args []string, file string) []string {
	argv := make([]string, 0, len(args)+2)
	argv = append(argv, tool)
	argv = append(argv, args...)
	return append(argv, file)
}

// Commands builds one argument vector per file, in file order.
func Commands(tool string, args []string, files []string) [][]string {
	commands := make([][]string, len(files))
	for i, file := range files {
		commands[i] = Command(tool, args, file)
	}
	return commands
}
