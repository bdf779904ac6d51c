package viewer

import (
	"errors"
	"fmt"

	"exifview/internal/exiftool"
	"exifview/internal/metadata"
	"exifview/internal/ui/builder"
)

// Describe turns a session error into a title and message for the user.
func Describe(err error) (title, message string) {
	var spawnErr *exiftool.SpawnError
	var parseErr *metadata.UnparseableError

	switch {
	case err == nil:
		return "", ""
	case errors.Is(err, exiftool.ErrToolNotFound):
		return "exiftool not found",
			"exiftool could not be started. Install it or point EXIFVIEW_EXIFTOOL at the executable."
	case errors.As(err, &spawnErr):
		return "Could not start exiftool", spawnErr.Error()
	case errors.As(err, &parseErr):
		return "Unreadable metadata",
			fmt.Sprintf("The metadata of file %d could not be read. Directories and unsupported files have none.", parseErr.Index+1)
	case errors.Is(err, builder.ErrConstruction):
		return "Window could not be built", err.Error()
	}
	return "Error", err.Error()
}
