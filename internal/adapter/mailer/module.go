package mailer

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/fixhive/fixhive/internal/config"
)

// Module exposes the notification gateway to the fx graph.
var Module = fx.Provide(newGateway)

type gatewayParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newGateway(p gatewayParams) *Gateway {
	return NewGateway(p.Config.PostmarkServerToken, p.Config.EmailSender, p.Logger)
}
