// Package payhere implements the PayHere merchant signing scheme: an
// uppercase hex MD5 over concatenated merchant fields. MD5 is mandated by
// the gateway protocol; it is an interop requirement, not a security choice.
package payhere

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidAmount = errors.New("invalid amount")

// FormatAmount renders a numeric or numeric-string amount with exactly two
// fraction digits, the representation the gateway signs over. Non-finite or
// unparseable input fails with ErrInvalidAmount.
func FormatAmount(v interface{}) (string, error) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	case json.Number:
		parsed, err := x.Float64()
		if err != nil {
			return "", ErrInvalidAmount
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return "", ErrInvalidAmount
		}
		f = parsed
	default:
		return "", ErrInvalidAmount
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", ErrInvalidAmount
	}
	return strconv.FormatFloat(f, 'f', 2, 64), nil
}

// MD5Hex returns the uppercase hexadecimal MD5 digest of the UTF-8 bytes of s.
func MD5Hex(s string) string {
	sum := md5.Sum([]byte(s))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

// GenerateHash computes the request-signing hash issued to the client before
// it opens the payment popup. amount must already be formatted via
// FormatAmount; the verifier recomputes the digest over the same bytes.
func GenerateHash(merchantID, orderID, amount, currency, merchantSecret string) string {
	return MD5Hex(merchantID + orderID + amount + currency + MD5Hex(merchantSecret))
}

// VerifySignature authenticates a gateway notification by recomputing the
// digest from the callback fields. The non-empty check on md5sig is a
// deliberate guard ahead of the equality comparison: an all-empty callback
// must never verify against an attacker-chosen empty signature.
func VerifySignature(merchantID, orderID, amount, currency, statusCode, merchantSecret, md5sig string) bool {
	if md5sig == "" {
		return false
	}
	local := MD5Hex(merchantID + orderID + amount + currency + statusCode + MD5Hex(merchantSecret))
	return local == md5sig
}
