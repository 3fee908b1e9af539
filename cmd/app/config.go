package main

import (
	"fmt"
	"strings"

	"github.com/TOPG-DEV/burntheworld/internal/repository"

	"github.com/spf13/viper"
)

const (
	configPath   = "./"
	configName   = "config"
	configFormat = "yaml"
)

type Config struct {
	Database repository.Config `yaml:"database"`
	Server   ServerConfig      `yaml:"server"`
	Solana   SolanaConfig      `yaml:"solana"`
	Auth     AuthConfig        `yaml:"auth"`

	LogLevel string `yaml:"logLevel"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type SolanaConfig struct {
	APIKey          string  `yaml:"apiKey"`
	APIURL          string  `yaml:"apiUrl"`
	RPCURL          string  `yaml:"rpcUrl"`
	TreasuryWallet  string  `yaml:"treasuryWallet"`
	TokenMint       string  `yaml:"tokenMint"`
	SolPerRound     float64 `yaml:"solPerRound"`
	TxLookbackLimit int     `yaml:"txLookbackLimit"`
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwtSecret"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(configName)
	viper.AddConfigPath(configPath)
	viper.SetConfigType(configFormat)

	viper.SetDefault("solana.apiUrl", "https://api.helius.xyz")
	viper.SetDefault("solana.rpcUrl", "https://mainnet.helius-rpc.com")
	viper.SetDefault("solana.solPerRound", 0.5)
	viper.SetDefault("solana.txLookbackLimit", 100)
	viper.SetDefault("logLevel", "info")

	viper.AutomaticEnv()
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
