package handler

import (
	"net/http"

	"github.com/verdantgames/GardenGrove_Go/internal/domain"
)

// Query parameter names carrying the visitor's identity on every game route
const (
	ParamVisitorID   = "visitorId"
	ParamProfileID   = "profileId"
	ParamDisplayName = "displayName"
	ParamAssetID     = "assetId"
	ParamURLSlug     = "urlSlug"
)

// GetCredentials extracts the visitor credentials from the query string.
// visitorId is the state key and is required; the remaining parameters are
// passed through to the service, which decides per operation what it needs.
//
// If ok is false, the HTTP response has already been written and the handler
// should return.
func GetCredentials(r *http.Request, w http.ResponseWriter) (domain.Credentials, bool) {
	visitorID, ok := GetQueryParam(r, w, ParamVisitorID)
	if !ok {
		return domain.Credentials{}, false
	}

	query := r.URL.Query()
	return domain.Credentials{
		VisitorID:   visitorID,
		ProfileID:   query.Get(ParamProfileID),
		DisplayName: query.Get(ParamDisplayName),
		AssetID:     query.Get(ParamAssetID),
		URLSlug:     query.Get(ParamURLSlug),
	}, true
}
