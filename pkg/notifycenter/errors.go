package notifycenter

import "errors"

var (
	// ErrInvalidPreferences is returned when a preferences document cannot be decoded.
	ErrInvalidPreferences = errors.New("notifycenter: invalid preferences document")

	// ErrPreferencesFile is returned when the configured preferences file cannot be read.
	ErrPreferencesFile = errors.New("notifycenter: cannot read preferences file")
)
