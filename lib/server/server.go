package server

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/pescuma/takeoff/lib/consoles"
	"github.com/pescuma/takeoff/lib/workspace"
)

type Options struct {
	Port uint
}

func Run(console consoles.Console, ws *workspace.Workspace, opts *Options) error {
	s := newServer(ws, opts)

	console.Printf("Starting server on port %v...\n", s.opts.Port)

	return s.run()
}

type server struct {
	opts *Options
	ws   *workspace.Workspace
}

func newServer(ws *workspace.Workspace, opts *Options) *server {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Port == 0 {
		opts.Port = 2472
	}

	return &server{
		opts: opts,
		ws:   ws,
	}
}

func (s *server) run() error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	s.initSystems(r)
	s.initPricing(r)
	s.initEstimates(r)
	s.initTakeoffs(r)

	return r.Run(fmt.Sprintf(":%v", s.opts.Port))
}
