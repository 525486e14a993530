package middleware

import (
	"tweet-insights-srv/pkg/log"
	"tweet-insights-srv/pkg/scope"
)

type Middleware struct {
	l           log.Logger
	jwtManager  scope.Manager
	serviceKeys map[string]string
}

// New - serviceKeys maps a calling service name to the key it presents on /internal routes.
func New(l log.Logger, jwtManager scope.Manager, serviceKeys map[string]string) Middleware {
	return Middleware{
		l:           l,
		jwtManager:  jwtManager,
		serviceKeys: serviceKeys,
	}
}
