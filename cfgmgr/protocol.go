package cfgmgr

import (
	"iter"
	"math"

	"github.com/pkg/errors"
)

// indexLimit bounds every indexed enumeration to the uint32 index space.
const indexLimit = math.MaxUint32

// sizedFetch is one call of a sized retrieval: buf is nil on the sizing
// call, size is the in/out element count.
type sizedFetch[T any] func(buf []T, size *uint32) Result

// sized retrieves a variable-length value in two calls: one with no buffer
// to learn the required size, then one with a buffer of exactly that size.
//
// The sizing call must report CR_BUFFER_SMALL; if emptyOK is set, CR_SUCCESS
// is accepted as an empty answer and no second call is made. The second call
// must report CR_SUCCESS. If the service writes fewer elements than it asked
// for, the buffer is trimmed to what it reported.
//
// ok is false if either call reported anything else; cr is that result.
func sized[T any](fetch sizedFetch[T], emptyOK bool) (buf []T, cr Result, ok bool) {
	var size uint32
	cr = fetch(nil, &size)
	switch cr.Disposition() {
	case BufferTooSmall:
	case Success:
		if emptyOK {
			return []T{}, cr, true
		}
		return nil, cr, false
	default:
		return nil, cr, false
	}

	buf = make([]T, size)
	n := size
	if cr = fetch(buf, &n); cr != CR_SUCCESS {
		return nil, cr, false
	}
	if n < size {
		buf = buf[:n]
	}
	return buf, cr, true
}

// indexedFetch returns the item at index, or a non-success Result.
type indexedFetch[T any] func(index uint32) (T, Result)

// enumerate walks an indexed enumeration from index 0 until the service
// reports CR_NO_SUCH_VALUE. Any other failure is yielded once as an *Error
// and ends the sequence. Running past limit without reaching the end of data
// yields ErrIndexOverflow.
//
// The sequence is lazy and restartable: each range re-runs the calls.
func enumerate[T any](m *Manager, op string, limit uint32, fetch indexedFetch[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		for i := uint32(0); i < limit; i++ {
			item, cr := fetch(i)
			switch cr.Disposition() {
			case Success:
				if !yield(item, nil) {
					return
				}
			case NoMoreItems:
				return
			default:
				yield(zero, m.fail(op, cr))
				return
			}
		}
		m.log.WithField("op", op).Warnf("no end of data after %d items", limit)
		yield(zero, errors.Wrap(ErrIndexOverflow, op))
	}
}
