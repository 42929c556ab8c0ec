// Package settings holds the user preferences and persists them as a single
// JSON blob in a key-value store.
package settings

import (
	"errors"
	"fmt"
	"regexp"
)

// Theme selects the colour palette.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Settings is the user-configurable state. The JSON names are the ones
// written to the settings blob.
type Settings struct {
	ServerURL string `json:"serverUrl"`
	GridSize  int    `json:"gridSize"`
	PointSize int    `json:"pointSize"`
	Theme     Theme  `json:"theme"`
}

// Form bounds.
const (
	MinGridSize  = 10
	MaxGridSize  = 50
	MinPointSize = 1
	MaxPointSize = 10
)

// Defaults returns the settings used when nothing has been stored.
func Defaults() Settings {
	return Settings{
		ServerURL: "http://localhost:3000",
		GridSize:  20,
		PointSize: 5,
		Theme:     Light,
	}
}

// ErrInvalid is wrapped by every FieldError.
var ErrInvalid = errors.New("settings: invalid value")

// FieldError names the field that failed validation.
type FieldError struct {
	Field string
	Msg   string
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Msg }

func (e *FieldError) Unwrap() error { return ErrInvalid }

var urlPattern = regexp.MustCompile(`^https?://.+`)

// Validate applies the settings form rules. The Store does not call it;
// values are checked where the user enters them.
func Validate(s Settings) error {
	var errs []error
	if s.ServerURL == "" {
		errs = append(errs, &FieldError{"serverUrl", "required"})
	} else if !urlPattern.MatchString(s.ServerURL) {
		errs = append(errs, &FieldError{"serverUrl", "must start with http:// or https://"})
	}
	if s.GridSize < MinGridSize || s.GridSize > MaxGridSize {
		errs = append(errs, &FieldError{"gridSize", fmt.Sprintf("must be between %d and %d", MinGridSize, MaxGridSize)})
	}
	if s.PointSize < MinPointSize || s.PointSize > MaxPointSize {
		errs = append(errs, &FieldError{"pointSize", fmt.Sprintf("must be between %d and %d", MinPointSize, MaxPointSize)})
	}
	if s.Theme != Light && s.Theme != Dark {
		errs = append(errs, &FieldError{"theme", "must be light or dark"})
	}
	return errors.Join(errs...)
}

// FieldErrors pulls the individual field errors out of a Validate result.
func FieldErrors(err error) map[string]string {
	out := map[string]string{}
	if err == nil {
		return out
	}
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		for _, e := range joined.Unwrap() {
			var fe *FieldError
			if errors.As(e, &fe) {
				out[fe.Field] = fe.Msg
			}
		}
		return out
	}
	var fe *FieldError
	if errors.As(err, &fe) {
		out[fe.Field] = fe.Msg
	}
	return out
}
