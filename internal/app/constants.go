package app

import "time"

const (
	ShutdownTimeout = 15 * time.Second

	ErrMsgInvalidConfig  = "validation error"
	ErrMsgLoadSecrets    = "failed to load database secrets"
	ErrMsgPrivateKey     = "failed to initialize private key"
	ErrMsgConnector      = "failed to initialize database connector"
	ErrMsgMigrations     = "failed to run migrations"
	ErrMsgUserRepo       = "failed to initialize user repository"
	ErrMsgViews          = "failed to initialize views"
	ErrMsgAddRouteFormat = "failed to add %s route: %w"
)
