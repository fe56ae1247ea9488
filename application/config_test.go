package application

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/aldur/arcula"
	"github.com/aldur/arcula/bip44"
)

func testConfig(dir string) *Config {
	return NewConfig(
		filepath.Join(dir, "config.toml"),
		"wallet.seed",
		&LoggerConfig{Environment: "development"},
		bip44.Config{
			"BTC": {{PrivateAddresses: 1, PublicAddresses: 2}},
		},
	)
}

func TestConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	conf := testConfig(dir)
	if err := conf.Save(); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadConfig(conf.Path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.SeedPath != conf.SeedPath {
		t.Error("Expect seed path", conf.SeedPath, "got", loaded.SeedPath)
	}
	accounts := loaded.AccountConfig()["BTC"]
	if len(accounts) != 1 || accounts[0].PublicAddresses != 2 {
		t.Error("Coin configuration was not preserved")
	}
}

func TestConfigSaveRefusesOverwrite(t *testing.T) {
	conf := testConfig(t.TempDir())
	if err := conf.Save(); err != nil {
		t.Fatal(err)
	}
	if err := conf.Save(); err == nil {
		t.Fatal("Overwrote an existing config")
	}
}

func TestLoadSeed(t *testing.T) {
	dir := t.TempDir()
	conf := testConfig(dir)

	seed := make([]byte, arcula.WalletSeedSize)
	for i := range seed {
		seed[i] = byte(i)
	}
	encoded := hex.EncodeToString(seed) + "\n"
	if err := os.WriteFile(filepath.Join(dir, "wallet.seed"), []byte(encoded), 0600); err != nil {
		t.Fatal(err)
	}

	loaded, err := conf.LoadSeed()
	if err != nil {
		t.Fatal(err)
	}
	for i := range seed {
		if loaded[i] != seed[i] {
			t.Fatal("Loaded seed differs from the stored seed")
		}
	}
}

func TestLoadSeedRejectsWrongSize(t *testing.T) {
	dir := t.TempDir()
	conf := testConfig(dir)

	if err := os.WriteFile(filepath.Join(dir, "wallet.seed"), []byte("abcd\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := conf.LoadSeed(); err == nil {
		t.Fatal("Accepted a 2-byte seed")
	}
}
