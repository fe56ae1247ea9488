package cmd

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"path"

	"github.com/spf13/cobra"

	"github.com/aldur/arcula"
	"github.com/aldur/arcula/application"
	"github.com/aldur/arcula/bip44"
	"github.com/aldur/arcula/cli"
	"github.com/aldur/arcula/utils"
)

// initCmd represents the init command
var initCmd = cli.NewInitCommand("the Arcula wallet", initRunFunc)

func init() {
	RootCmd.AddCommand(initCmd)
	initCmd.Flags().StringP("dir", "d", ".", "Location of directory for storing generated files")
}

func initRunFunc(cmd *cobra.Command, args []string) {
	dir := cmd.Flag("dir").Value.String()
	mkConfig(dir)
	mkSeed(dir)
}

func mkConfig(dir string) {
	file := path.Join(dir, "config.toml")
	logger := &application.LoggerConfig{
		Environment: "development",
	}
	coins := bip44.Config{
		"BTC": {{PrivateAddresses: 1, PublicAddresses: 2}},
	}

	conf := application.NewConfig(file, "wallet.seed", logger, coins)
	if err := conf.Save(); err != nil {
		log.Println(err)
	}
}

func mkSeed(dir string) {
	seed := make([]byte, arcula.WalletSeedSize)
	if _, err := rand.Read(seed); err != nil {
		log.Print(err)
		return
	}
	encoded := hex.EncodeToString(seed) + "\n"
	if err := utils.WriteFile(path.Join(dir, "wallet.seed"), []byte(encoded), 0600); err != nil {
		log.Println(err)
	}
}
