package main

import (
	"github.com/pescuma/takeoff/lib/server"
)

type ServeCmd struct {
	Port uint `help:"Port to listen on." default:"2472"`
}

func (c *ServeCmd) Run(ctx *context) error {
	return server.Run(ctx.ws.Console(), ctx.ws, &server.Options{
		Port: c.Port,
	})
}
