package registry

// Creator identifies who registered an asset.
type Creator struct {
	Name     string `json:"name"`
	Verified bool   `json:"verified"`
}

// Asset is the subset of registry fields required by the app. Date and
// token fields arrive as strings and may be empty or malformed; consumers
// are expected to degrade them to zero values rather than fail.
type Asset struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	Type             string  `json:"type"`
	Tags             string  `json:"tags"`
	LicenseType      string  `json:"licenseType"`
	Creator          Creator `json:"creator"`
	RegistrationDate string  `json:"registrationDate"`
	Timestamp        string  `json:"timestamp"`
	TokenID          string  `json:"tokenId"`
	Slug             string  `json:"slug"`
}
