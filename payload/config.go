package payload

import (
	"github.com/oasislabs/decoder-client/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	cfgRequestTxn          = "request.txn"
	cfgRequestContractPath = "request.contract_path"

	defaultTxn = "0x7b7e9c40f73ec6aa0b14ef61b485d7d41a9b2e70befed0b03face3bf3412c57e"
)

// Config holds the inputs of the payload other than the ABI
type Config struct {
	Txn          string
	ContractPath string
}

func (c *Config) Log(fields log.Fields) {
	fields.Add(cfgRequestTxn, c.Txn)
	fields.Add(cfgRequestContractPath, c.ContractPath)
}

func (c *Config) Configure(v *viper.Viper) error {
	c.Txn = v.GetString(cfgRequestTxn)
	c.ContractPath = v.GetString(cfgRequestContractPath)
	return nil
}

func (c *Config) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String(cfgRequestTxn, defaultTxn,
		"transaction hash sent as the txn field")
	cmd.PersistentFlags().String(cfgRequestContractPath, "contract.txt",
		"path to the contract source file")
	return nil
}
