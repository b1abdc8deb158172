package digest

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/armor"
)

// ErrNoSigningKey is returned by SignPGP when keyring holds no entity with a
// private key usable for signing.
var ErrNoSigningKey = fmt.Errorf("digest: no usable signing key in keyring")

// SignPGP produces a binary (non-armored) detached OpenPGP signature over
// data using the first signing-capable entity in keyring, the bytes stored
// verbatim in RPMSIGTAG_PGP/RPMSIGTAG_GPG.
func SignPGP(data []byte, keyring openpgp.EntityList) ([]byte, error) {
	signer := firstSigningEntity(keyring)
	if signer == nil {
		return nil, ErrNoSigningKey
	}

	var buf bytes.Buffer
	if err := openpgp.DetachSign(&buf, signer, bytes.NewReader(data), nil); err != nil {
		return nil, fmt.Errorf("digest: pgp sign: %w", err)
	}
	return buf.Bytes(), nil
}

// ReadArmoredKeyRing parses one armored OpenPGP private or public key block,
// as loaded from a build configuration's signing-key path.
func ReadArmoredKeyRing(r io.Reader) (openpgp.EntityList, error) {
	block, err := armor.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("digest: decode armored key: %w", err)
	}
	entities, err := openpgp.ReadKeyRing(block.Body)
	if err != nil {
		return nil, fmt.Errorf("digest: read key ring: %w", err)
	}
	return entities, nil
}

func firstSigningEntity(keyring openpgp.EntityList) *openpgp.Entity {
	for _, e := range keyring {
		if e.PrivateKey != nil && !e.PrivateKey.Encrypted {
			return e
		}
	}
	return nil
}
