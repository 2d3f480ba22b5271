package exchange

import "errors"

// ErrNoData means the exchange answered but had no bars for the request.
var ErrNoData = errors.New("exchange: no kline data")

// ErrBadRequest means the request itself is wrong (unknown symbol,
// unsupported interval). Retrying will not help.
var ErrBadRequest = errors.New("exchange: bad request")

// TransientError wraps network and rate-limit failures that may succeed on
// a later cycle.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return "exchange: transient: " + e.Err.Error()
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}
