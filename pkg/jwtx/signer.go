package jwtx

// Signer is our interface for anything that can sign JWTs.
type Signer interface {
	Alg() string
	KID() string
	Sign(Claims) (string, error)
	Validate() error
}

// NewSignerHS256 creates an HMAC-SHA256 signer over a shared secret.
func NewSignerHS256(secret []byte) (Signer, error) {
	s := newHS256Signer(secret)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
