package cfgmgr

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrIndexOverflow is returned by an enumeration that exhausted the 32-bit
	// index space without the service ever reporting the end of data.
	ErrIndexOverflow = errors.New("cfgmgr: enumeration index overflow")

	// ErrClassNotFound is returned when no setup class has the requested name.
	ErrClassNotFound = errors.New("cfgmgr: setup class not found")
)

// Error is a failed configuration manager call.
type Error struct {
	Op     string // function that failed, e.g. "CM_Locate_DevNodeW"
	Result Result
}

func (e *Error) Error() string {
	return fmt.Sprintf("cfgmgr: %s: %s (0x%X)", e.Op, e.Result, uint32(e.Result))
}

// ResultOf returns the CONFIGRET carried by err, if any.
func ResultOf(err error) (Result, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Result, true
	}
	return 0, false
}
