package application

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/aldur/arcula"
	"github.com/aldur/arcula/bip44"
	"github.com/aldur/arcula/utils"
)

// A Config contains the configuration values of a wallet executable,
// which are read at initialization time from a TOML format
// configuration file: the path of the hex-encoded wallet seed and
// the hierarchy to generate, as coin symbols mapped to their
// accounts' address counts.
type Config struct {
	Path     string                           `toml:"-"`
	SeedPath string                           `toml:"seed"`
	Logger   *LoggerConfig                    `toml:"logger"`
	Coins    map[string][]bip44.AccountConfig `toml:"coins"`
}

// NewConfig initializes a wallet configuration with the given seed
// path, logger configuration and coin accounts.
func NewConfig(file, seedPath string, logConfig *LoggerConfig, coins bip44.Config) *Config {
	return &Config{
		Path:     file,
		SeedPath: seedPath,
		Logger:   logConfig,
		Coins:    coins,
	}
}

// LoadConfig reads a wallet configuration from the given
// toml-encoded file.
func LoadConfig(file string) (*Config, error) {
	conf := new(Config)
	if _, err := toml.DecodeFile(file, conf); err != nil {
		return nil, fmt.Errorf("Failed to load config: %v", err)
	}
	conf.Path = file
	return conf, nil
}

// Save stores the configuration in toml encoding at its path.
// It refuses to overwrite an existing file.
func (conf *Config) Save() error {
	var confBuf bytes.Buffer
	e := toml.NewEncoder(&confBuf)
	if err := e.Encode(conf); err != nil {
		return err
	}
	return utils.WriteFile(conf.Path, confBuf.Bytes(), 0600)
}

// AccountConfig returns the hierarchy configuration for the
// tree builder.
func (conf *Config) AccountConfig() bip44.Config {
	return bip44.Config(conf.Coins)
}

// LoadSeed reads the hex-encoded wallet seed from the path specified
// in the configuration file, resolved relative to it.
func (conf *Config) LoadSeed() ([]byte, error) {
	seedPath := utils.ResolvePath(conf.SeedPath, conf.Path)
	encoded, err := os.ReadFile(seedPath)
	if err != nil {
		return nil, fmt.Errorf("Cannot read wallet seed: %v", err)
	}
	seed, err := hex.DecodeString(string(bytes.TrimSpace(encoded)))
	if err != nil {
		return nil, fmt.Errorf("Cannot parse wallet seed: %v", err)
	}
	if len(seed) != arcula.WalletSeedSize {
		return nil, fmt.Errorf("Wallet seed must be %d bytes (got %d)",
			arcula.WalletSeedSize, len(seed))
	}
	return seed, nil
}
