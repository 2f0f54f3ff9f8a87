package springbounce

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"go.viam.com/test"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestConfigResolved(t *testing.T) {
	var nilConf *Config
	test.That(t, nilConf.Resolved(), test.ShouldResemble, Params{K: 10, D: 2, M: 50})
	test.That(t, (&Config{}).Resolved(), test.ShouldResemble, DefaultParams())

	conf := &Config{DampingFactor: floatPtr(0), MaxForceMagnitude: floatPtr(7.5)}
	test.That(t, conf.Resolved(), test.ShouldResemble, Params{K: 10, D: 0, M: 7.5})
}

func TestConfigValidate(t *testing.T) {
	test.That(t, (&Config{}).Validate("path"), test.ShouldBeNil)

	negative := &Config{
		SpringConstant:    floatPtr(-10),
		DampingFactor:     floatPtr(-2),
		MaxForceMagnitude: floatPtr(-50),
	}
	test.That(t, negative.Validate("path"), test.ShouldBeNil)

	conf := &Config{SpringConstant: floatPtr(math.NaN()), MaxForceMagnitude: floatPtr(math.Inf(1))}
	err := conf.Validate("objects.bumper")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "objects.bumper")
	test.That(t, err.Error(), test.ShouldContainSubstring, "spring_constant must be finite")
	test.That(t, err.Error(), test.ShouldContainSubstring, "max_force_magnitude must be finite")
	test.That(t, err.Error(), test.ShouldNotContainSubstring, "damping_factor")
}

func TestDecodeConfig(t *testing.T) {
	conf, err := DecodeConfig(map[string]interface{}{
		"spring_constant": 25,
		"damping_factor":  0.5,
	})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, conf.Resolved(), test.ShouldResemble, Params{K: 25, D: 0.5, M: 50})

	_, err = DecodeConfig(map[string]interface{}{"stiffness": 25})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "stiffness")

	_, err = DecodeConfig(map[string]interface{}{"damping_factor": math.Inf(-1)})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "damping_factor must be finite")
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.json")
	test.That(t, os.WriteFile(good, []byte(`{"spring_constant": 4, "max_force_magnitude": 0}`), 0o600), test.ShouldBeNil)
	conf, err := ReadConfig(good)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, conf.Resolved(), test.ShouldResemble, Params{K: 4, D: 2, M: 0})

	unknown := filepath.Join(dir, "unknown.json")
	test.That(t, os.WriteFile(unknown, []byte(`{"spring": 4}`), 0o600), test.ShouldBeNil)
	_, err = ReadConfig(unknown)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "cannot parse config file")

	_, err = ReadConfig(filepath.Join(dir, "missing.json"))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "cannot read config file")
}
