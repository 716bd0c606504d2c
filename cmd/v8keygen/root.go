package main

import "github.com/spf13/cobra"

// Execute builds and runs the v8keygen command tree: offline key
// generation and nonce derivation for fixture data and custom-server
// interoperation testing, entirely outside the session core itself.
func Execute() error {
	root := &cobra.Command{
		Use:   "v8keygen",
		Short: "Generate and inspect v8 session fixture material",
	}

	root.AddCommand(generateCmd(), deriveNonceCmd())
	return root.Execute()
}
