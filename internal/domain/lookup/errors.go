package lookup

import "errors"

var (
	ErrUnknownKind = errors.New("unknown lookup kind")
)
