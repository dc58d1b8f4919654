package api

import "guest-conversion/internal/pkg/errs"

var errUnauthorized = errs.New("unauthenticated request")
