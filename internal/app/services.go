package app

import (
	"go.uber.org/fx"

	"github.com/exitthree/formgate/config"
	"github.com/exitthree/formgate/internal/service/lead"
	"github.com/exitthree/formgate/internal/service/notify"
	"github.com/exitthree/formgate/pkg/email"
	"github.com/exitthree/formgate/pkg/leadsapi"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideLeadService,
		ProvideNotifyService,
	),
)

func ProvideLeadService(api *leadsapi.Client) lead.Service {
	return lead.New(api)
}

func ProvideNotifyService(emailClient *email.Client, cfg *config.Config) notify.Service {
	// Notifications go back to the sending account itself.
	return notify.New(emailClient, cfg.Email.SMTP.Username)
}
