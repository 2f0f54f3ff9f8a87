package springbounce

import (
	"bytes"
	"encoding/json"
	"math"
	"os"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.viam.com/utils"
)

// Defaults used for any Config field left unset.
const (
	DefaultSpringConstant    = 10.0
	DefaultDampingFactor     = 2.0
	DefaultMaxForceMagnitude = 50.0
)

// Config describes the tunable parameters of a Responder. Unset fields take the package defaults;
// an explicit zero is kept as zero.
type Config struct {
	// SpringConstant is the stiffness k.
	SpringConstant *float64 `json:"spring_constant,omitempty"`
	// DampingFactor is the velocity resistance d.
	DampingFactor *float64 `json:"damping_factor,omitempty"`
	// MaxForceMagnitude is the clamp ceiling m.
	MaxForceMagnitude *float64 `json:"max_force_magnitude,omitempty"`
}

// Params are the resolved, immutable scalars a Responder computes with.
type Params struct {
	K float64 `json:"spring_constant"`
	D float64 `json:"damping_factor"`
	M float64 `json:"max_force_magnitude"`
}

// DefaultParams returns the parameters of an empty Config.
func DefaultParams() Params {
	return Params{K: DefaultSpringConstant, D: DefaultDampingFactor, M: DefaultMaxForceMagnitude}
}

// Validate ensures every set value is finite. Signs are not checked: negative values are legal and
// produce attractive or amplifying responses.
func (conf *Config) Validate(path string) error {
	var errs error
	for _, field := range []struct {
		name  string
		value *float64
	}{
		{"spring_constant", conf.SpringConstant},
		{"damping_factor", conf.DampingFactor},
		{"max_force_magnitude", conf.MaxForceMagnitude},
	} {
		if field.value == nil {
			continue
		}
		if v := *field.value; math.IsNaN(v) || math.IsInf(v, 0) {
			errs = multierr.Append(errs,
				utils.NewConfigValidationError(path, errors.Errorf("%s must be finite, got %v", field.name, v)))
		}
	}
	return errs
}

// Resolved fills unset fields with defaults. A nil Config resolves to DefaultParams.
func (conf *Config) Resolved() Params {
	params := DefaultParams()
	if conf == nil {
		return params
	}
	if conf.SpringConstant != nil {
		params.K = *conf.SpringConstant
	}
	if conf.DampingFactor != nil {
		params.D = *conf.DampingFactor
	}
	if conf.MaxForceMagnitude != nil {
		params.M = *conf.MaxForceMagnitude
	}
	return params
}

// DecodeConfig decodes a free-form attribute map, as found in a host's scene or object
// description, into a validated Config. Unknown keys are rejected.
func DecodeConfig(attributes map[string]interface{}) (*Config, error) {
	conf := &Config{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "json",
		Result:      conf,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(attributes); err != nil {
		return nil, errors.Wrap(err, "cannot decode spring bounce attributes")
	}
	if err := conf.Validate("attributes"); err != nil {
		return nil, err
	}
	return conf, nil
}

// ReadConfig reads a JSON Config from path and validates it.
func ReadConfig(path string) (*Config, error) {
	//nolint:gosec
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read config file %q", path)
	}
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	conf := &Config{}
	if err := decoder.Decode(conf); err != nil {
		return nil, errors.Wrapf(err, "cannot parse config file %q", path)
	}
	if err := conf.Validate(path); err != nil {
		return nil, err
	}
	return conf, nil
}
