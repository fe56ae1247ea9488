package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aldur/arcula"
	"github.com/aldur/arcula/cli"
	"github.com/aldur/arcula/crypto/sign"
)

// verifyCmd represents the verify command
var verifyCmd = cli.NewRunCommand("verify <cold-storage-pk> <node-pk> <node-id> <signature>",
	"Verify a node certificate.",
	`Verify that the cold-storage authority authorized a signing key
to act for a node identifier. All arguments are hex encoded: the
compressed cold-storage public key, the compressed node public key,
the 8-byte node identifier, and the DER certificate signature.`,
	verifyRunFunc)

func init() {
	RootCmd.AddCommand(verifyCmd)
}

func verifyRunFunc(cmd *cobra.Command, args []string) {
	if len(args) != 4 {
		fmt.Println("verify requires the cold-storage public key, the node public key, the node identifier and the signature")
		return
	}

	coldStorageBytes, err := hex.DecodeString(args[0])
	if err != nil {
		fmt.Println("malformed cold-storage public key:", err)
		return
	}
	coldStoragePublicKey, err := sign.ParseCompressed(coldStorageBytes)
	if err != nil {
		fmt.Println("malformed cold-storage public key:", err)
		return
	}

	cert := new(arcula.Certificate)
	for i, field := range []*[]byte{&cert.PublicKey, &cert.ID, &cert.Signature} {
		if *field, err = hex.DecodeString(args[i+1]); err != nil {
			fmt.Println("malformed certificate field:", err)
			return
		}
	}

	if arcula.VerifyCertificate(coldStoragePublicKey, cert) {
		fmt.Println("certificate OK")
	} else {
		fmt.Println("certificate INVALID")
	}
}
