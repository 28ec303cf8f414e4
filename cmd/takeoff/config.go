package main

import (
	"fmt"
)

type ConfigSetCmd struct {
	Config string `arg:"" help:"Configuration parameter to set."`
	Value  string `arg:"" help:"Value of the configuration parameter."`
}

func (c *ConfigSetCmd) Run(ctx *context) error {
	changed, err := ctx.ws.SetGlobalConfig(c.Config, c.Value)
	if err != nil {
		return err
	}

	if changed {
		fmt.Printf("Config %v updated.\n", c.Config)
	} else {
		fmt.Printf("Config %v already up to date.\n", c.Config)
	}

	return nil
}
