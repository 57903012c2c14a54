package keyio

import (
	"bytes"

	"github.com/minio/sha256-simd"
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

const checksumLen = 4

var (
	ErrChecksum  = errors.New("base58check: checksum mismatch")
	ErrMalformed = errors.New("base58check: malformed payload")
)

func checksum(payload []byte) []byte {
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	return second[:checksumLen]
}

// CheckEncode appends a double-SHA256 checksum to payload and base58-encodes it.
func CheckEncode(payload []byte) string {
	buf := make([]byte, 0, len(payload)+checksumLen)
	buf = append(buf, payload...)
	buf = append(buf, checksum(payload)...)
	return base58.Encode(buf)
}

// CheckDecode reverses CheckEncode, returning the payload with the checksum
// stripped.
func CheckDecode(s string) ([]byte, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return nil, errors.Wrap(ErrMalformed, err.Error())
	}
	if len(raw) < checksumLen {
		return nil, ErrMalformed
	}
	payload, sum := raw[:len(raw)-checksumLen], raw[len(raw)-checksumLen:]
	if !bytes.Equal(checksum(payload), sum) {
		return nil, ErrChecksum
	}
	return payload, nil
}
