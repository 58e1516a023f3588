// Package keygen generates ES256 (P-256 ECDSA) key pairs encoded as JWKs.
package keygen

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v5"
)

// p256ByteLen is the byte length of a P-256 coordinate.
const p256ByteLen = 32

// JWK is a JSON Web Key for a P-256 ECDSA key. D is present only on the
// private form.
type JWK struct {
	Kty string `json:"kty"`
	Crv string `json:"crv"`
	Alg string `json:"alg"`
	Kid string `json:"kid,omitempty"`
	X   string `json:"x"`
	Y   string `json:"y"`
	D   string `json:"d,omitempty"`
}

// KeyPair holds a generated key with both JWK forms.
type KeyPair struct {
	Private JWK
	Public  JWK

	key *ecdsa.PrivateKey
}

// Generate creates a new P-256 key pair, encodes it as JWKs, and verifies
// it with an ES256 sign/verify round trip before returning.
func Generate(kid string) (*KeyPair, error) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, errors.Wrap(err, "generating P-256 key")
	}

	pair := &KeyPair{key: key}
	pair.Public = JWK{
		Kty: "EC",
		Crv: "P-256",
		Alg: "ES256",
		Kid: kid,
		X:   b64Coord(key.PublicKey.X.FillBytes(make([]byte, p256ByteLen))),
		Y:   b64Coord(key.PublicKey.Y.FillBytes(make([]byte, p256ByteLen))),
	}
	pair.Private = pair.Public
	pair.Private.D = b64Coord(key.D.FillBytes(make([]byte, p256ByteLen)))

	if err := pair.selfCheck(); err != nil {
		return nil, err
	}

	return pair, nil
}

// selfCheck signs and verifies a throwaway token with the generated key so
// a broken pair is never handed to the user.
func (p *KeyPair) selfCheck() error {
	token := jwt.NewWithClaims(jwt.SigningMethodES256, jwt.MapClaims{"check": true})
	signed, err := token.SignedString(p.key)
	if err != nil {
		return errors.Wrap(err, "signing check token")
	}

	parsed, err := jwt.Parse(signed, func(*jwt.Token) (any, error) {
		return &p.key.PublicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodES256.Alg()}))
	if err != nil {
		return errors.Wrap(err, "verifying check token")
	}
	if !parsed.Valid {
		return errors.New("generated key failed verification")
	}

	return nil
}

// PrivateJSON returns the private JWK as compact JSON, suitable for an
// environment variable value.
func (p *KeyPair) PrivateJSON() (string, error) {
	data, err := json.Marshal(p.Private)
	if err != nil {
		return "", errors.Wrap(err, "encoding private JWK")
	}
	return string(data), nil
}

// PublicJSON returns the public JWK as indented JSON.
func (p *KeyPair) PublicJSON() (string, error) {
	data, err := json.MarshalIndent(p.Public, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "encoding public JWK")
	}
	return string(data), nil
}

// ParsePrivate decodes a private JWK produced by Generate back into an
// ECDSA private key.
func ParsePrivate(jwkJSON string) (*ecdsa.PrivateKey, error) {
	var j JWK
	if err := json.Unmarshal([]byte(jwkJSON), &j); err != nil {
		return nil, errors.Wrap(err, "decoding JWK")
	}
	if j.Kty != "EC" || j.Crv != "P-256" {
		return nil, errors.Newf("unsupported key type %s/%s", j.Kty, j.Crv)
	}
	if j.D == "" {
		return nil, errors.New("JWK has no private component")
	}

	x, err := decodeCoord(j.X)
	if err != nil {
		return nil, errors.Wrap(err, "decoding x")
	}
	y, err := decodeCoord(j.Y)
	if err != nil {
		return nil, errors.Wrap(err, "decoding y")
	}
	d, err := decodeCoord(j.D)
	if err != nil {
		return nil, errors.Wrap(err, "decoding d")
	}

	key := &ecdsa.PrivateKey{}
	key.PublicKey.Curve = elliptic.P256()
	key.PublicKey.X = x
	key.PublicKey.Y = y
	key.D = d

	if !key.PublicKey.Curve.IsOnCurve(x, y) {
		return nil, errors.New("JWK point is not on P-256")
	}

	return key, nil
}

func b64Coord(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

func decodeCoord(s string) (*big.Int, error) {
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(b), nil
}
