//go:build !cgo

package hal

import "errors"

var ErrWindowClosed = errors.New("window closed")

type WindowConfig struct {
	Width  int
	Height int
	Scale  int
	Title  string
	TPS    int
}

func RunWindow(_ WindowConfig, _ func(h HAL) func() error) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
