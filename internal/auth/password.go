package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// sha256BcryptPrefix marks hashes written by HashPassword: a standard bcrypt
// hash of the base64 SHA-256 of the password, so passwords longer than
// bcrypt's 72 byte limit stay significant.
const sha256BcryptPrefix = "$sha256-bcrypt$"

// passlibPrefix marks passlib bcrypt_sha256 hashes, which are verified but
// never written:
//
//	v1: $bcrypt-sha256$2a,12$<salt>$<digest>      key = b64(sha256(pw))
//	v2: $bcrypt-sha256$v=2,t=2b,r=12$<salt>$<digest>  key = b64(hmac-sha256(salt, pw))
const passlibPrefix = "$bcrypt-sha256$"

// HashPassword hashes plaintext with the sha256-bcrypt scheme
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(prehash(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return sha256BcryptPrefix + string(hash), nil
}

// VerifyPassword compares plaintext to a stored hash, detecting the scheme.
// Plain bcrypt and passlib bcrypt_sha256 hashes are accepted for older rows.
func VerifyPassword(hash, plain string) bool {
	if rest, ok := strings.CutPrefix(hash, sha256BcryptPrefix); ok {
		return bcrypt.CompareHashAndPassword([]byte(rest), prehash(plain)) == nil
	}
	if rest, ok := strings.CutPrefix(hash, passlibPrefix); ok {
		return verifyPasslib(rest, plain)
	}
	if strings.HasPrefix(hash, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
	}
	return false
}

func verifyPasslib(rest, plain string) bool {
	parts := strings.Split(rest, "$")
	if len(parts) != 3 {
		return false
	}
	params, salt, digest := parts[0], parts[1], parts[2]
	if len(salt) != 22 || len(digest) != 31 {
		return false
	}

	version := 1
	var ident, rounds string
	if strings.HasPrefix(params, "v=") {
		for _, kv := range strings.Split(params, ",") {
			k, v, _ := strings.Cut(kv, "=")
			switch k {
			case "v":
				if v != "2" {
					return false
				}
				version = 2
			case "t":
				ident = v
			case "r":
				rounds = v
			}
		}
	} else {
		ident, rounds, _ = strings.Cut(params, ",")
	}
	cost, err := strconv.Atoi(rounds)
	if err != nil || ident == "" {
		return false
	}

	key := prehash(plain)
	if version == 2 {
		mac := hmac.New(sha256.New, []byte(salt))
		mac.Write([]byte(plain))
		key = encodeKey(mac.Sum(nil))
	}
	inner := fmt.Sprintf("$%s$%02d$%s%s", ident, cost, salt, digest)
	return bcrypt.CompareHashAndPassword([]byte(inner), key) == nil
}

func prehash(plain string) []byte {
	sum := sha256.Sum256([]byte(plain))
	return encodeKey(sum[:])
}

func encodeKey(sum []byte) []byte {
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum)
	return out
}
