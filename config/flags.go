package config

import (
	"github.com/spf13/pflag"
)

type CliConfig struct {
	ConfigFile    string
	ListenAddress string
	Debug         bool
	Version       bool
}

// ParseArgs parses command line arguments (without the program name).
// It returns pflag.ErrHelp when -h or --help was given.
func ParseArgs(args []string) (*CliConfig, error) {
	cli := &CliConfig{}
	fs := pflag.NewFlagSet("urlintake", pflag.ContinueOnError)
	fs.StringVarP(&cli.ConfigFile, "config", "c", "", "Path to the config file")
	fs.StringVarP(&cli.ListenAddress, "listen", "l", "", "Listen address, overrides listen_address")
	fs.BoolVarP(&cli.Debug, "debug", "d", false, "Enable debug mode")
	fs.BoolVarP(&cli.Version, "version", "v", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cli, nil
}
