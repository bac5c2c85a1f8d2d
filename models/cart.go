package models

// CartItem is a product placed in the session cart. Quantity is fixed at one:
// re-adding a product is rejected rather than incremented.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// UserProfileSummary is the synthesized view-profile payload for the user
// dashboard. It is never persisted.
type UserProfileSummary struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	JoinedDate      string `json:"joined_date"`
	FavoritesCount  int    `json:"favorites_count"`
	PurchasesCount  int    `json:"purchases_count"`
	JoinedChapters  int    `json:"joined_chapters"`
	FollowedArtists int    `json:"followed_artists"`
}
