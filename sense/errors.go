package sense

import "errors"

// ErrUnresolved indicates Disambiguate found a context key whose candidate
// senses all scored as non-orderable (NaN) under the given similarity
// function, leaving no selectable best match.
var ErrUnresolved = errors.New("sense: no selectable sense")
