//go:build !windows

package setupapi

import (
	"iter"

	"github.com/Microsoft/go-winio/pkg/guid"
	"github.com/pkg/errors"
)

// ErrNotSupported is returned on systems without setupapi.dll.
var ErrNotSupported = errors.New("setupapi: not supported on this platform")

// Interfaces yields ErrNotSupported.
func Interfaces(class guid.GUID, presentOnly bool) iter.Seq2[DeviceInterface, error] {
	return func(yield func(DeviceInterface, error) bool) {
		yield(DeviceInterface{}, ErrNotSupported)
	}
}
