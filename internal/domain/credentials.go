package domain

// Credentials identify the visitor and world context of a game request.
// They arrive on the query string of every game route; the core only relies
// on VisitorID as the state key, ProfileID as the ownership identity and
// AssetID as the plot asset being interacted with.
type Credentials struct {
	VisitorID   string `json:"visitorId"`
	ProfileID   string `json:"profileId"`
	DisplayName string `json:"displayName"`
	AssetID     string `json:"assetId"`
	URLSlug     string `json:"urlSlug"`
}
