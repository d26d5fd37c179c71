// Package config loads the tool configuration from a YAML file via
// viper, with flag and environment overrides layered on top.
package config

import (
	"os"
	"path/filepath"

	"github.com/go-i2p/logger"
	"github.com/spf13/viper"

	"github.com/go-i2p/gorsa/lib/util"
)

var (
	// CfgFile is the config file path from the command line; empty
	// means the default location.
	CfgFile string
	log     = logger.GetGoI2PLogger()
)

const GORSA_BASE_DIR = ".gorsa"

// RSAConfig holds the scheme defaults applied when a command does not
// override them.
type RSAConfig struct {
	// Scheme selects the signature padding: "pkcs1v15" or "pss".
	Scheme string
	// Hash names the digest: sha1, sha224, sha256, sha384, sha512,
	// sha3-256, sha3-384 or sha3-512.
	Hash string
	// SaltLength is the PSS salt length in bytes; 0 means automatic
	// and -1 means hash sized.
	SaltLength int
	// KeyFile is the default key file path.
	KeyFile string
	// OAEPLabel is the default OAEP label.
	OAEPLabel string
}

func InitConfig() {
	if CfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(CfgFile)
	} else {
		// Set up viper to use the default config path $HOME/.gorsa/
		viper.AddConfigPath(BuildGorsaDirPath())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("gorsa")
	viper.AutomaticEnv()

	setDefaults()
	handleConfigFile()
}

func setDefaults() {
	viper.SetDefault("scheme", "pss")
	viper.SetDefault("hash", "sha256")
	viper.SetDefault("salt_length", 0)
	viper.SetDefault("key_file", filepath.Join(BuildGorsaDirPath(), "key.yaml"))
	viper.SetDefault("oaep_label", "")
}

// NewRSAConfigFromViper creates an RSAConfig from the current viper
// settings.
func NewRSAConfigFromViper() *RSAConfig {
	return &RSAConfig{
		Scheme:     viper.GetString("scheme"),
		Hash:       viper.GetString("hash"),
		SaltLength: viper.GetInt("salt_length"),
		KeyFile:    viper.GetString("key_file"),
		OAEPLabel:  viper.GetString("oaep_label"),
	}
}

func createDefaultConfig(defaultConfigDir string) {
	defaultConfigFile := filepath.Join(defaultConfigDir, "config.yaml")
	// Ensure directory exists
	if err := os.MkdirAll(defaultConfigDir, 0o755); err != nil {
		log.Fatalf("Could not create config directory: %s", err)
	}

	if err := viper.WriteConfigAs(defaultConfigFile); err != nil {
		log.Fatalf("Could not write default config file: %s", err)
	}

	log.Debugf("Created default configuration at: %s", defaultConfigFile)
}

func handleConfigFile() {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if CfgFile != "" {
				log.Fatalf("Config file %s is not found: %s", CfgFile, err)
			} else {
				createDefaultConfig(BuildGorsaDirPath())
			}
		} else {
			log.Fatalf("Error reading config file: %s", err)
		}
	} else {
		log.Debugf("Using config file: %s", viper.ConfigFileUsed())
	}
}

func BuildGorsaDirPath() string {
	return filepath.Join(util.UserHome(), GORSA_BASE_DIR)
}
