package keystore

import "errors"

// ErrWrongPassphrase is returned when Open fails to authenticate the
// envelope under the supplied passphrase.
var ErrWrongPassphrase = errors.New("keystore: wrong passphrase or corrupted envelope")

// ErrMalformedEnvelope is returned when an envelope's binary shape cannot
// be parsed.
var ErrMalformedEnvelope = errors.New("keystore: malformed envelope")
