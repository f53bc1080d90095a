package cmd

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// ModelConfig carries fitted process parameters, either from flags or from
// a YAML model file.
type ModelConfig struct {
	Mu    float64 `json:"mu" yaml:"mu"`
	Alpha float64 `json:"alpha" yaml:"alpha"`
	Sigma float64 `json:"sigma" yaml:"sigma"`
}

// loadModelConfig reads the model parameters from the --config file when
// given, otherwise from the --mu, --alpha and --sigma flags.
func loadModelConfig(cmd *cobra.Command) (ModelConfig, error) {
	var config ModelConfig

	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return config, err
	}

	if configFile != "" {
		content, err := ioutil.ReadFile(configFile)
		if err != nil {
			return config, errors.Wrapf(err, "can not read model config %s", configFile)
		}
		if err := yaml.Unmarshal(content, &config); err != nil {
			return config, errors.Wrapf(err, "can not parse model config %s", configFile)
		}
		return config, nil
	}

	if config.Mu, err = cmd.Flags().GetFloat64("mu"); err != nil {
		return config, err
	}
	if config.Alpha, err = cmd.Flags().GetFloat64("alpha"); err != nil {
		return config, err
	}
	if config.Sigma, err = cmd.Flags().GetFloat64("sigma"); err != nil {
		return config, err
	}
	return config, nil
}
