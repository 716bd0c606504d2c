package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cocv8/session-core/crypto"
)

func generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate a fresh Curve25519 key pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			keyPair, err := crypto.GenerateKeyPair()
			if err != nil {
				return err
			}
			fmt.Printf("public:  %s\n", hex.EncodeToString(keyPair.Public[:]))
			fmt.Printf("private: %s\n", hex.EncodeToString(keyPair.Private[:]))
			return nil
		},
	}
}
