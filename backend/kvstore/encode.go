package kvstore

import (
	"encoding/base64"
	"errors"
	"strings"
)

// Entry value format, one prefixed string per shape:
//
//	b64:<std-base64 payload>  - resource bytes
//	ref:<url>                 - passthrough pointer to a remote resource
//
// Decoding is strict: an unknown prefix or invalid base64 is corruption, not
// a third shape.

type Shape int

const (
	ShapeBytes Shape = iota + 1
	ShapeRef
)

const (
	bytesPrefix = "b64:"
	refPrefix   = "ref:"
)

var ErrCorrupt = errors.New("kvstore: corrupt entry")

// Entry is a decoded store value. Payload is set for ShapeBytes, Ref for
// ShapeRef; callers must check Shape before assuming either.
type Entry struct {
	Shape   Shape
	Payload []byte
	Ref     string
}

func encodeBytes(payload []byte) string {
	return bytesPrefix + base64.StdEncoding.EncodeToString(payload)
}

func encodeRef(target string) string {
	return refPrefix + target
}

func decodeEntry(raw string) (Entry, error) {
	switch {
	case strings.HasPrefix(raw, bytesPrefix):
		b, err := base64.StdEncoding.DecodeString(raw[len(bytesPrefix):])
		if err != nil {
			return Entry{}, ErrCorrupt
		}
		return Entry{Shape: ShapeBytes, Payload: b}, nil
	case strings.HasPrefix(raw, refPrefix):
		return Entry{Shape: ShapeRef, Ref: raw[len(refPrefix):]}, nil
	default:
		return Entry{}, ErrCorrupt
	}
}
