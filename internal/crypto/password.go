package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

// PasswordParams is the argon2id cost.
type PasswordParams struct {
	Memory      uint32 // KiB
	Time        uint32
	Parallelism uint8
	KeyLen      uint32
}

var DefaultPassword = PasswordParams{Memory: 64 * 1024, Time: 3, Parallelism: 1, KeyLen: 32}

// HashPassword returns a PHC string: $argon2id$v=19$m=...,t=...,p=...$<saltB64>$<dkB64>
func HashPassword(p PasswordParams, plain []byte) (string, error) {
	if len(plain) == 0 {
		return "", errors.New("empty password")
	}
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	dk := argon2.IDKey(plain, salt, p.Time, p.Memory, p.Parallelism, p.KeyLen)
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, p.Memory, p.Time, p.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(dk),
	), nil
}

// VerifyPassword checks plain against a PHC string in constant time.
// Malformed or out-of-bounds hashes never verify.
func VerifyPassword(plain []byte, phc string) bool {
	p, salt, dk, ok := parsePHC(phc)
	if !ok || len(plain) == 0 {
		return false
	}
	key := argon2.IDKey(plain, salt, p.Time, p.Memory, p.Parallelism, uint32(len(dk)))
	defer clear(key)
	return subtle.ConstantTimeCompare(key, dk) == 1
}

// ValidPasswordHash reports whether phc is a well-formed argon2id PHC string.
func ValidPasswordHash(phc string) bool {
	_, _, _, ok := parsePHC(phc)
	return ok
}

func parsePHC(phc string) (p PasswordParams, salt, dk []byte, ok bool) {
	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, dk
	parts := strings.Split(phc, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return p, nil, nil, false
	}
	if parts[2] != "v="+strconv.Itoa(argon2.Version) {
		return p, nil, nil, false
	}

	var m, t, par uint64
	for _, kv := range strings.Split(parts[3], ",") {
		k, v, found := strings.Cut(kv, "=")
		if !found {
			return p, nil, nil, false
		}
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return p, nil, nil, false
		}
		switch k {
		case "m":
			m = n
		case "t":
			t = n
		case "p":
			par = n
		default:
			return p, nil, nil, false
		}
	}
	// bounds keep a crafted backup from exhausting memory
	if m < 8 || m > 1<<21 || t < 1 || t > 16 || par < 1 || par > 16 {
		return p, nil, nil, false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) < 8 {
		return p, nil, nil, false
	}
	dk, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(dk) < 16 {
		return p, nil, nil, false
	}

	p = PasswordParams{Memory: uint32(m), Time: uint32(t), Parallelism: uint8(par), KeyLen: uint32(len(dk))}
	return p, salt, dk, true
}
