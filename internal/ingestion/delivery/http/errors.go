package http

import (
	pkgErrors "tweet-insights-srv/pkg/errors"
)

var (
	errInvalidQuery = pkgErrors.NewHTTPError(
		400, "Invalid pagination parameters",
	)
)
