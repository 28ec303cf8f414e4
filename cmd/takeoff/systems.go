package main

import (
	"fmt"
)

type SystemsCmd struct {
}

func (c *SystemsCmd) Run(ctx *context) error {
	for _, s := range ctx.ws.Systems() {
		fmt.Printf("%v: %v\n", s.Type, s.Meta.DisplayName)
		if s.Meta.SpecRef != "" {
			fmt.Printf("   spec section %v\n", s.Meta.SpecRef)
		}
		fmt.Printf("   labour x%.2f, mechanical x%.2f, general requirements %.0f%%\n",
			s.Meta.LabourMultiplier, s.Meta.MechanicalMultiplier, s.Meta.GeneralReqsPct*100)
		if s.Meta.LabourNote != "" {
			fmt.Printf("   %v\n", s.Meta.LabourNote)
		}
	}

	return nil
}
