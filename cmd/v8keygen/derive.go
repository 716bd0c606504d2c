package main

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cocv8/session-core/crypto"
	"github.com/cocv8/session-core/session"
)

func deriveNonceCmd() *cobra.Command {
	var clientPublicHex, serverPublicHex, snonceHex string

	cmd := &cobra.Command{
		Use:   "derive-nonce",
		Short: "Derive the Blake2b handshake nonce for a given key pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			clientPublic, err := decodeKey(clientPublicHex)
			if err != nil {
				return fmt.Errorf("client-public: %w", err)
			}
			serverPublic, err := decodeKey(serverPublicHex)
			if err != nil {
				return fmt.Errorf("server-public: %w", err)
			}

			// DeriveTwoKeyNonce always hashes client-first, server-second;
			// passing Client as the direction with the client's own key as
			// "ours" reproduces that ordering directly.
			twoKey, err := session.DeriveTwoKeyNonce(session.Client, clientPublic, serverPublic)
			if err != nil {
				return err
			}
			fmt.Printf("two_key_nonce: %s\n", hex.EncodeToString(twoKey[:]))

			if snonceHex == "" {
				return nil
			}
			snonceBytes, err := decodeNonce(snonceHex)
			if err != nil {
				return fmt.Errorf("snonce: %w", err)
			}
			threeKey, err := session.DeriveThreeKeyNonce(session.Client, clientPublic, serverPublic, snonceBytes)
			if err != nil {
				return err
			}
			fmt.Printf("three_key_nonce: %s\n", hex.EncodeToString(threeKey[:]))
			return nil
		},
	}

	cmd.Flags().StringVar(&clientPublicHex, "client-public", "", "client static public key, hex-encoded (required)")
	cmd.Flags().StringVar(&serverPublicHex, "server-public", "", "server static public key, hex-encoded (required)")
	cmd.Flags().StringVar(&snonceHex, "snonce", "", "server nonce, hex-encoded (optional, adds three-key form)")
	cmd.MarkFlagRequired("client-public")
	cmd.MarkFlagRequired("server-public")

	return cmd
}

func decodeKey(s string) ([crypto.KeyLength]byte, error) {
	var out [crypto.KeyLength]byte
	raw, err := hex.DecodeString(s)
	if err != nil {
		return out, err
	}
	if len(raw) != crypto.KeyLength {
		return out, errors.New("key must decode to exactly 32 bytes")
	}
	copy(out[:], raw)
	return out, nil
}

func decodeNonce(s string) (crypto.Nonce, error) {
	var out crypto.Nonce
	raw, err := hex.DecodeString(s)
	if err != nil {
		return out, err
	}
	if len(raw) != crypto.NonceLength {
		return out, errors.New("nonce must decode to exactly 24 bytes")
	}
	copy(out[:], raw)
	return out, nil
}
