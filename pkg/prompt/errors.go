package prompt

import "errors"

var (
	// ErrNotFound indicates that no row in the remote table matched the
	// requested template name. Local stores surface the underlying
	// filesystem error instead; check with errors.Is(err, fs.ErrNotExist).
	ErrNotFound = errors.New("prompt: template not found")

	// ErrAmbiguous indicates that more than one remote row matched the
	// requested template name.
	ErrAmbiguous = errors.New("prompt: template name is ambiguous")

	// ErrRemoteNotConfigured is returned when a caller requests the remote
	// client handle but the manager resolved to local mode.
	ErrRemoteNotConfigured = errors.New("prompt: remote store is not configured")
)
