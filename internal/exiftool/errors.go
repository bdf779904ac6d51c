package exiftool

import (
	"errors"
	"fmt"
	"strings"
)

// ErrToolNotFound means the extraction tool could not be resolved on this
// machine. It is an environment problem, not a property of the input file.
var ErrToolNotFound = errors.New("exiftool not found")

// SpawnError is a synchronous failure to start one command.
type SpawnError struct {
	Index int
	Argv  []string
	Err   error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("spawn command %d (%s): %v", e.Index, strings.Join(e.Argv, " "), e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}
