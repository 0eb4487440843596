package rest

import (
	"net/http"

	"github.com/finverse-labs/cardinfo-service/internal/application"
	"github.com/finverse-labs/cardinfo-service/internal/infrastructure/binlist"
)

// ToHTTPStatus maps validation and lookup failures to one status each:
// checksum/expiry 400, upstream not-found 404, upstream status carried
// through when usable, everything else 500.
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if svcErr, ok := application.IsServiceError(err); ok {
		return svcErr.HTTPStatus
	}

	if lookupErr, ok := binlist.IsLookupError(err); ok {
		switch lookupErr.Kind {
		case binlist.KindNotFound:
			return http.StatusNotFound
		case binlist.KindUpstreamStatus:
			if lookupErr.StatusCode >= http.StatusBadRequest {
				return lookupErr.StatusCode
			}
			return http.StatusInternalServerError
		default:
			return http.StatusInternalServerError
		}
	}

	return http.StatusInternalServerError
}
