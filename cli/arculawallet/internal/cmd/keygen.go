package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aldur/arcula/application"
	"github.com/aldur/arcula/bip44"
	"github.com/aldur/arcula/cli"
	"github.com/aldur/arcula/crypto"
)

// keygenCmd represents the keygen command
var keygenCmd = cli.NewRunCommand("keygen",
	"Generate the wallet keys and certificates.",
	`Build the hierarchy described by the configuration file, derive
every node's key material from the wallet seed, and print the
cold-storage public key. With --path, additionally print the
certificate of the node at that derivation path.`,
	keygenRunFunc)

func init() {
	RootCmd.AddCommand(keygenCmd)
	keygenCmd.Flags().StringP("config", "c", "config.toml", "Path to the wallet configuration file")
	keygenCmd.Flags().StringP("path", "p", "", "Derivation path of a node whose certificate to print")
}

func keygenRunFunc(cmd *cobra.Command, args []string) {
	conf, logger := loadConfigAndLogger(cmd)

	seed, err := conf.LoadSeed()
	if err != nil {
		logger.Fatal(err.Error())
	}

	wallet, err := bip44.NewWallet(seed, conf.AccountConfig(), suite())
	if err != nil {
		logger.Fatal("Key generation failed", "error", err)
	}
	logger.Info("Wallet keys generated")

	fmt.Println("cold storage public key:",
		hex.EncodeToString(wallet.ColdStoragePublicKey().Compress()))

	if path := cmd.Flag("path").Value.String(); path != "" {
		_, cert, err := wallet.SigningKeyCertificate(path)
		if err != nil {
			logger.Fatal("Path resolution failed", "path", path, "error", err)
		}
		fmt.Println("public key: ", hex.EncodeToString(cert.PublicKey))
		fmt.Println("identifier: ", hex.EncodeToString(cert.ID))
		fmt.Println("certificate:", hex.EncodeToString(cert.Signature))
	}
}

func loadConfigAndLogger(cmd *cobra.Command) (*application.Config, *application.Logger) {
	file := cmd.Flag("config").Value.String()
	conf, err := application.LoadConfig(file)
	if err != nil {
		// no logger configuration yet
		panic(err)
	}
	return conf, application.NewLogger(conf.Logger)
}

// suite returns the primitive suite the executables run with.
func suite() crypto.Suite {
	return crypto.DefaultSuite()
}
