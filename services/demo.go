package services

import (
	"artwala-io/gateway/models"
)

// DemoNotice is the banner text surfaced when the overview dashboard falls
// back to the built-in dataset.
const DemoNotice = "Using demo data - backend connection not available in this environment"

// DemoProducts returns the fixed sample catalog used in demo mode.
func DemoProducts() []models.Product {
	return []models.Product{
		{ID: 1, Title: "Sunset Over Ganges", Price: "25000.00", ArtistName: "Priya Sharma", CategoryName: "Paintings", Status: models.ProductStatusPublished},
		{ID: 2, Title: "Dancing Shiva Bronze", Price: "85000.00", ArtistName: "Rajesh Patel", CategoryName: "Sculptures", Status: models.ProductStatusPublished},
		{ID: 3, Title: "Monsoon Streets", Price: "12000.00", ArtistName: "Anita Roy", CategoryName: "Digital Art", Status: models.ProductStatusPublished},
	}
}

func DemoArtists() []models.ArtistProfile {
	return []models.ArtistProfile{
		{ID: 1, DisplayName: "Priya Sharma", Specializations: []string{"Oil Paintings"}, ExperienceYears: 8, Rating: 4.7},
		{ID: 2, DisplayName: "Rajesh Patel", Specializations: []string{"Bronze Sculptures"}, ExperienceYears: 12, Rating: 4.9},
		{ID: 3, DisplayName: "Anita Roy", Specializations: []string{"Watercolors"}, ExperienceYears: 6, Rating: 4.5},
	}
}

func DemoCategories() []models.Category {
	return []models.Category{
		{ID: 1, Name: "Paintings", Description: "Traditional and modern paintings"},
		{ID: 2, Name: "Sculptures", Description: "3D art pieces"},
		{ID: 3, Name: "Digital Art", Description: "Computer-generated artwork"},
	}
}

func DemoChapters() []models.Chapter {
	return []models.Chapter{
		{ID: 1, Name: "Mumbai Chapter", City: "Mumbai"},
		{ID: 2, Name: "Delhi Chapter", City: "Delhi"},
	}
}

func DemoPosts() []models.Post {
	return []models.Post{
		{ID: 1, Title: "Welcome to ARTWALA", Content: "Join our community of artists", CreatedAt: "2025-07-03T10:00:00Z"},
	}
}

// DemoArtistProfile is the stand-in profile shown on the artist dashboard
// when the upstream profile resource fails or comes back empty.
func DemoArtistProfile() models.ArtistProfile {
	return models.ArtistProfile{
		ID:              1,
		DisplayName:     "Demo Artist",
		Bio:             "This is a demo artist profile for the ArtWala platform.",
		Specializations: []string{"Painting", "Digital Art"},
		ExperienceYears: 5,
		Rating:          4.8,
		ReviewsCount:    12,
		Email:           "artist@example.com",
		Website:         "https://example.com/artist",
		SocialMedia: map[string]string{
			"instagram": "@demoartist",
			"twitter":   "@demoartist",
		},
	}
}
