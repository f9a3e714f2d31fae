package format

import (
	"github.com/signadot/vtree/ir"
	"github.com/spf13/viper"
)

// FromViper returns the merged settings of vp. Viper folds keys to lower
// case.
func FromViper(vp *viper.Viper) (ir.Value, error) {
	return ir.FromAny(vp.AllSettings())
}

// readViper reads a configuration file in any format viper supports, such
// as TOML, HCL, INI, dotenv or Java properties.
func readViper(name string) (ir.Value, error) {
	vp := viper.New()
	vp.SetConfigFile(name)
	if err := vp.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigParseError); ok {
			return ir.Value{}, &ParseError{Origin: name, Err: err}
		}
		return ir.Value{}, &IOError{Op: "read", Origin: name, Err: err}
	}
	v, err := FromViper(vp)
	if err != nil {
		return ir.Value{}, &ParseError{Origin: name, Err: err}
	}
	return v, nil
}
