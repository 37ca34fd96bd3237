package identifier

import "errors"

var ErrIdentifierExhausted = errors.New("identifier generation retries exhausted")
