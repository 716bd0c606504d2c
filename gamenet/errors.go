package gamenet

import "errors"

// ErrShortDerivedKeyFrame is returned when an OpcodeDerivedKey frame's
// payload is not exactly the length of a key and both counter nonces
// (too short or too long).
var ErrShortDerivedKeyFrame = errors.New("gamenet: derived-key frame too short")
