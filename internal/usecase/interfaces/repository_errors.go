package interfaces

import "errors"

// ErrConflict reports a failed conditional write: the row already existed
// (create-once) or its status moved underneath a compare-and-set update.
// Callers decide whether to converge on the existing row or surface 409.
var ErrConflict = errors.New("conditional write conflict")
