// Package config holds the fixture values and server-facing settings that
// sit outside the session core: the well-known standard key pair and
// Supercell public key used for custom-server interoperation, and the
// listener/logging settings for a gamenet server process. None of it is
// part of the cryptographic algorithm itself.
package config

import (
	"encoding/hex"
	"errors"
	"strconv"
	"strings"

	ini "github.com/vaughan0/go-ini"
)

// KeyLength is the byte length of every public or private key this package
// handles, duplicated from the crypto package to avoid config depending on
// it for a single constant.
const KeyLength = 32

// standardPublicHex and standardPrivateHex are the published "standard"
// client key pair used by custom servers that don't perform their own key
// exchange out of band. Only the leading bytes are independently
// documented; operators connecting to a real deployment MUST override
// these via Load, not rely on the zero-padded remainder compiled in here.
const (
	standardPublicHex  = "72f1a4a400000000000000000000000000000000000000000000000000000000"
	standardPrivateHex = "1891d40100000000000000000000000000000000000000000000000000000000"
	supercellPublicHex = "1315d5ba00000000000000000000000000000000000000000000000000000000"
)

// Settings is the collection of configuration inputs a gamenet server
// process needs beyond the session core itself.
type Settings struct {
	// Listen is the address:port the server binds to.
	Listen string
	// MaxConnections bounds concurrent admitted connections.
	MaxConnections int
	// StandardPublicKey and StandardPrivateKey are the fixture client
	// identity used when no peer key exchange precedes the handshake.
	StandardPublicKey  [KeyLength]byte
	StandardPrivateKey [KeyLength]byte
	// SupercellPublicKey is the fixture peer identity for interoperating
	// with the original server deployment.
	SupercellPublicKey [KeyLength]byte
}

// New returns defaults: loopback listener, a modest connection cap, and
// the compiled-in (zero-padded) fixture keys.
func New() *Settings {
	s := &Settings{
		Listen:         "127.0.0.1:9339",
		MaxConnections: 1024,
	}
	must(decodeInto(&s.StandardPublicKey, standardPublicHex))
	must(decodeInto(&s.StandardPrivateKey, standardPrivateHex))
	must(decodeInto(&s.SupercellPublicKey, supercellPublicHex))
	return s
}

// Load overrides defaults from an ini file. Recognized keys in the
// default section: listen, max_connections, standard_public_key,
// standard_private_key, supercell_public_key (all key values as 64-
// character hex strings).
func (s *Settings) Load(filename string) error {
	cfg, err := ini.LoadFile(filename)
	if err != nil {
		return err
	}

	if listen, ok := cfg.Get("", "listen"); ok {
		s.Listen = listen
	}

	if maxConn, ok := cfg.Get("", "max_connections"); ok {
		n, err := strconv.Atoi(maxConn)
		if err != nil {
			return err
		}
		if n <= 0 {
			return errors.New("config: max_connections must be a positive integer")
		}
		s.MaxConnections = n
	}

	if pub, ok := cfg.Get("", "standard_public_key"); ok {
		if err := decodeInto(&s.StandardPublicKey, pub); err != nil {
			return err
		}
	}
	if priv, ok := cfg.Get("", "standard_private_key"); ok {
		if err := decodeInto(&s.StandardPrivateKey, priv); err != nil {
			return err
		}
	}
	if peer, ok := cfg.Get("", "supercell_public_key"); ok {
		if err := decodeInto(&s.SupercellPublicKey, peer); err != nil {
			return err
		}
	}

	return nil
}

func decodeInto(dst *[KeyLength]byte, hexStr string) error {
	raw, err := hex.DecodeString(strings.TrimSpace(hexStr))
	if err != nil {
		return err
	}
	if len(raw) != KeyLength {
		return errors.New("config: key must decode to exactly 32 bytes")
	}
	copy(dst[:], raw)
	return nil
}

func must(err error) {
	if err != nil {
		panic("config: invalid compiled-in fixture: " + err.Error())
	}
}
