package models

// ArtistProfile mirrors the upstream artist profile resource.
type ArtistProfile struct {
	ID                  int               `json:"id"`
	DisplayName         string            `json:"display_name"`
	Tagline             string            `json:"tagline,omitempty"`
	Bio                 string            `json:"bio,omitempty"`
	Specializations     []string          `json:"specializations"`
	ExperienceYears     int               `json:"experience_years"`
	Rating              float64           `json:"rating"`
	ReviewsCount        int               `json:"reviews_count"`
	Email               string            `json:"email,omitempty"`
	Website             string            `json:"website,omitempty"`
	SocialMedia         map[string]string `json:"social_media,omitempty"`
	CommissionAvailable bool              `json:"commission_available,omitempty"`
	Featured            bool              `json:"featured,omitempty"`
}

// ArtistAnalytics is the single-object analytics payload for the artist
// dashboard. The zero value doubles as the fetch-failed default.
type ArtistAnalytics struct {
	TotalSales       string  `json:"total_sales"`
	TotalOrders      int     `json:"total_orders"`
	TotalCommissions int     `json:"total_commissions"`
	ProfileViews     int     `json:"profile_views"`
	ProductsSold     int     `json:"products_sold"`
	AverageRating    float64 `json:"average_rating"`
}
