package main

import (
	"github.com/go-i2p/logger"
	"github.com/spf13/cobra"

	"github.com/go-i2p/gorsa/lib/config"
)

var log = logger.GetGoI2PLogger()

var rootCmd = &cobra.Command{
	Use:   "gorsa",
	Short: "RSA signing and encryption over YAML key files",
	Long: `gorsa signs, verifies, encrypts and decrypts with RSA keys stored
as YAML files. Signature padding is PKCS#1 v1.5 or PSS, encryption
padding is PKCS#1 v1.5 or OAEP.`,
}

func main() {
	cobra.OnInitialize(config.InitConfig)

	rootCmd.PersistentFlags().StringVar(&config.CfgFile, "config", "", "config file (default $HOME/.gorsa/config.yaml)")
	rootCmd.PersistentFlags().String("key", "", "key file, overriding the configured default")
	rootCmd.PersistentFlags().String("hash", "", "digest name, overriding the configured default")
	rootCmd.PersistentFlags().String("scheme", "", "padding scheme, overriding the configured default")

	rootCmd.AddCommand(signCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(encryptCmd)
	rootCmd.AddCommand(decryptCmd)
	rootCmd.AddCommand(keyinfoCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%s", err)
	}
}
