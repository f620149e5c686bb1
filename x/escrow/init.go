package escrow

import (
	"github.com/iov-one/redeem/gconf"
)

// ConfigPackage is the configuration section holding the contract
// parameters.
const ConfigPackage = "escrow"

// LoadValidator reads the contract parameters from the configuration and
// returns a validator for them.
func LoadValidator(opts gconf.Options) (*Validator, error) {
	var params ContractParams
	if err := gconf.InitConfig(opts, ConfigPackage, &params); err != nil {
		return nil, err
	}
	return NewValidator(params)
}
