package server

import (
	"fmt"

	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/parceltrack/parceltrack/pkg/config"
	handlers "github.com/parceltrack/parceltrack/pkg/handlers/http"
	"github.com/parceltrack/parceltrack/pkg/middleware"
	"github.com/parceltrack/parceltrack/pkg/server/router"
	"github.com/sirupsen/logrus"
)

type (
	ApiServerDI struct {
		MiddlewareTransport middleware.Transport
		HandlerTransport    handlers.HandlerTransport
		Config              *config.Config
		Logger              *logrus.Logger
	}
	ApiServer struct {
		*BaseServer
		middlewareTransport middleware.Transport
		handlerTransport    handlers.HandlerTransport
	}
)

func NewApiServer(di ApiServerDI) *ApiServer {
	return &ApiServer{
		BaseServer:          NewBaseServer(di.Config, di.Logger),
		middlewareTransport: di.MiddlewareTransport,
		handlerTransport:    di.HandlerTransport,
	}
}

func (s *ApiServer) Run() error {
	s.Router.Use(recover.New())
	s.setupHealthCheck()
	s.WithRouters(router.NewApiRouter(&s.middlewareTransport, s.handlerTransport))

	addr := fmt.Sprintf("%s:%d", s.Config.Server.Host, s.Config.Server.Port)
	s.Logger.WithField("addr", addr).Info("starting api server")
	return s.Router.Listen(addr)
}

func (s *ApiServer) Shutdown() error {
	return s.Router.Shutdown()
}
