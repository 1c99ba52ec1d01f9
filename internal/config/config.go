package config

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/viper"

	"github.com/filpay/filpay/internal/payments"
)

// Defaults target USDFC under FilecoinPay on Filecoin mainnet.
const (
	DefaultRPCURL          = "https://rpc.ankr.com/filecoin"
	DefaultChainID         = 314
	DefaultContractAddress = "0x23b1e018F08BB982348b15a86ee926eEBf7F4DAa"
	DefaultTokenAddress    = "0x80B98d3aa09ffff255c3ba4A241111Ff1262F045"
	DefaultTokenSymbol     = "USDFC"
	DefaultTokenDecimals   = 18
)

type Config struct {
	Chain  ChainConfig
	Token  TokenConfig
	Redis  RedisConfig
	Server ServerConfig
}

type ChainConfig struct {
	RPCURL          string `mapstructure:"rpc_url"`
	ChainID         int64  `mapstructure:"chain_id"`
	ContractAddress string `mapstructure:"contract_address"`
	PrivateKey      string `mapstructure:"private_key"`

	// UsePendingNonce orders transactions by the node's pending nonce
	// instead of the last-confirmed one. See chain.Client.
	UsePendingNonce bool `mapstructure:"use_pending_nonce"`
}

type TokenConfig struct {
	Address  string `mapstructure:"address"`
	Symbol   string `mapstructure:"symbol"`
	Decimals uint8  `mapstructure:"decimals"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("chain.rpc_url", DefaultRPCURL)
	v.SetDefault("chain.chain_id", DefaultChainID)
	v.SetDefault("chain.contract_address", DefaultContractAddress)
	v.SetDefault("chain.use_pending_nonce", true)
	v.SetDefault("token.address", DefaultTokenAddress)
	v.SetDefault("token.symbol", DefaultTokenSymbol)
	v.SetDefault("token.decimals", DefaultTokenDecimals)
	v.SetDefault("server.port", 8080)

	// Config file (optional)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.filpay")
	_ = v.ReadInConfig()

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicit env bindings
	bindings := map[string]string{
		"chain.rpc_url":           "FILPAY_RPC_URL",
		"chain.chain_id":          "FILPAY_CHAIN_ID",
		"chain.contract_address":  "FILPAY_CONTRACT",
		"chain.private_key":       "FILPAY_PRIVATE_KEY",
		"chain.use_pending_nonce": "FILPAY_USE_PENDING_NONCE",
		"token.address":           "FILPAY_TOKEN_ADDRESS",
		"token.symbol":            "FILPAY_TOKEN_SYMBOL",
		"token.decimals":          "FILPAY_TOKEN_DECIMALS",
		"redis.addr":              "FILPAY_REDIS_ADDR",
		"redis.password":          "FILPAY_REDIS_PASSWORD",
		"server.port":             "FILPAY_PORT",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	if c.Chain.RPCURL == "" {
		return fmt.Errorf("required config missing: FILPAY_RPC_URL")
	}
	if c.Chain.ChainID == 0 {
		return fmt.Errorf("required config missing: FILPAY_CHAIN_ID")
	}
	if !common.IsHexAddress(c.Chain.ContractAddress) {
		return fmt.Errorf("invalid contract address: %q", c.Chain.ContractAddress)
	}
	if !common.IsHexAddress(c.Token.Address) {
		return fmt.Errorf("invalid token address: %q", c.Token.Address)
	}
	if c.Token.Decimals == 0 {
		return fmt.Errorf("token decimals must be set")
	}
	return nil
}

// TokenDescriptor resolves the configured token into its typed descriptor.
// This is the only place a token address string is parsed.
func (c *Config) TokenDescriptor() payments.Token {
	return payments.Token{
		Address:  common.HexToAddress(c.Token.Address),
		Symbol:   c.Token.Symbol,
		Decimals: c.Token.Decimals,
	}
}
