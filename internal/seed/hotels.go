// Package seed holds the fixed demo dataset used by the destructive seed
// operation on the manager surface.
package seed

import domainhotel "stayhub/internal/domain/hotel"

var demoImages = []string{
	"https://images.unsplash.com/photo-1571896349842-33c89424de2d?w=800&h=600&fit=crop",
	"https://images.unsplash.com/photo-1544551763-46a013bb70d5?w=800&h=600&fit=crop",
	"https://images.unsplash.com/photo-1566073771259-6a8506099945?w=800&h=600&fit=crop",
}

// Hotels returns creation parameters for the demo hotels. Callers assign
// fresh ids and timestamps before persisting.
func Hotels() []domainhotel.CreateParams {
	return []domainhotel.CreateParams{
		{
			ManagerID:   "demo-user-1",
			Name:        "The Ritz-Carlton Maldives",
			Description: "Luxury resort with overwater villas and pristine beaches. Experience unparalleled luxury in the heart of the Maldives with world-class service and breathtaking ocean views.",
			Location:    "Fari Islands, Maldives",
			City:        "Malé",
			Country:     "Maldives",
			Category:    "luxury",
			Rating:      4.8,
			Images:      demoImages,
			Amenities:   []string{"Spa", "Private Beach", "Overwater Villa", "Fine Dining", "Water Sports", "Kids Club", "Concierge", "Room Service"},
			RoomTypes: []domainhotel.RoomType{
				{Type: "Overwater Villa", Price: 1200, MaxGuests: 2, Available: 5},
				{Type: "Beach Villa", Price: 800, MaxGuests: 4, Available: 8},
				{Type: "Garden Villa", Price: 600, MaxGuests: 2, Available: 12},
			},
		},
		{
			ManagerID:   "demo-user-2",
			Name:        "Aman Tokyo",
			Description: "Urban luxury with traditional Japanese aesthetics. Discover the perfect blend of modern comfort and traditional Japanese hospitality in the heart of Tokyo.",
			Location:    "Otemachi, Tokyo",
			City:        "Tokyo",
			Country:     "Japan",
			Category:    "luxury",
			Rating:      4.9,
			Images:      demoImages,
			Amenities:   []string{"Spa", "Michelin Restaurant", "City Views", "Concierge", "Fitness Center", "Library", "Cultural Tours", "Tea Ceremony"},
			RoomTypes: []domainhotel.RoomType{
				{Type: "Deluxe Room", Price: 1500, MaxGuests: 2, Available: 3},
				{Type: "Suite", Price: 2500, MaxGuests: 4, Available: 2},
				{Type: "Presidential Suite", Price: 4000, MaxGuests: 6, Available: 1},
			},
		},
		{
			ManagerID:   "demo-user-3",
			Name:        "Four Seasons Resort Bora Bora",
			Description: "Tropical paradise with crystal clear waters. Immerse yourself in the beauty of French Polynesia with overwater bungalows and pristine beaches.",
			Location:    "Bora Bora, French Polynesia",
			City:        "Bora Bora",
			Country:     "French Polynesia",
			Category:    "resort",
			Rating:      4.7,
			Images:      demoImages,
			Amenities:   []string{"Overwater Bungalows", "Snorkeling", "Spa", "Beach Access", "Water Sports", "Fine Dining", "Sunset Cruises", "Cultural Shows"},
			RoomTypes: []domainhotel.RoomType{
				{Type: "Overwater Bungalow", Price: 1800, MaxGuests: 3, Available: 4},
				{Type: "Beachfront Villa", Price: 2200, MaxGuests: 4, Available: 3},
				{Type: "Garden Villa", Price: 1200, MaxGuests: 2, Available: 6},
			},
		},
		{
			ManagerID:   "demo-user-4",
			Name:        "The Plaza New York",
			Description: "Historic luxury hotel in the heart of Manhattan. Experience the grandeur of New York City with Central Park views and legendary service.",
			Location:    "5th Avenue, New York",
			City:        "New York",
			Country:     "USA",
			Category:    "business",
			Rating:      4.6,
			Images:      demoImages,
			Amenities:   []string{"Central Park Views", "Historic Architecture", "Fine Dining", "Shopping", "Concierge", "Fitness Center", "Business Center", "Valet Parking"},
			RoomTypes: []domainhotel.RoomType{
				{Type: "Deluxe Room", Price: 800, MaxGuests: 2, Available: 8},
				{Type: "Suite", Price: 1500, MaxGuests: 4, Available: 4},
				{Type: "Presidential Suite", Price: 3000, MaxGuests: 6, Available: 1},
			},
		},
		{
			ManagerID:   "demo-user-5",
			Name:        "Burj Al Arab Jumeirah",
			Description: "Iconic sail-shaped hotel with unparalleled luxury. Experience the epitome of luxury in Dubai with breathtaking views and world-class amenities.",
			Location:    "Jumeirah Beach, Dubai",
			City:        "Dubai",
			Country:     "UAE",
			Category:    "luxury",
			Rating:      4.8,
			Images:      demoImages,
			Amenities:   []string{"Private Beach", "Helipad", "Luxury Suites", "Fine Dining", "Spa", "Shopping", "Sky Bar", "Personal Butler"},
			RoomTypes: []domainhotel.RoomType{
				{Type: "Deluxe Suite", Price: 2000, MaxGuests: 2, Available: 3},
				{Type: "Royal Suite", Price: 5000, MaxGuests: 4, Available: 2},
				{Type: "Presidential Suite", Price: 8000, MaxGuests: 6, Available: 1},
			},
		},
		{
			ManagerID:   "demo-user-6",
			Name:        "Hotel de Crillon Paris",
			Description: "Historic palace hotel with French elegance. Discover the charm of Paris with this magnificent palace hotel offering timeless luxury.",
			Location:    "Place de la Concorde, Paris",
			City:        "Paris",
			Country:     "France",
			Category:    "luxury",
			Rating:      4.7,
			Images:      demoImages,
			Amenities:   []string{"Historic Palace", "Michelin Restaurant", "Spa", "City Views", "Concierge", "Art Collection", "Wine Cellar", "Garden Terrace"},
			RoomTypes: []domainhotel.RoomType{
				{Type: "Deluxe Room", Price: 1200, MaxGuests: 2, Available: 5},
				{Type: "Suite", Price: 2000, MaxGuests: 4, Available: 3},
				{Type: "Presidential Suite", Price: 4000, MaxGuests: 6, Available: 1},
			},
		},
		{
			ManagerID:   "demo-user-7",
			Name:        "The Savoy London",
			Description: "Legendary hotel on the River Thames. Experience British elegance and tradition in this iconic London landmark.",
			Location:    "Strand, London",
			City:        "London",
			Country:     "UK",
			Category:    "business",
			Rating:      4.5,
			Images:      demoImages,
			Amenities:   []string{"River Views", "Historic Bar", "Fine Dining", "Theater District", "Concierge", "Fitness Center", "Afternoon Tea", "Chauffeur Service"},
			RoomTypes: []domainhotel.RoomType{
				{Type: "Deluxe Room", Price: 600, MaxGuests: 2, Available: 10},
				{Type: "Suite", Price: 1200, MaxGuests: 4, Available: 5},
				{Type: "Royal Suite", Price: 2500, MaxGuests: 6, Available: 2},
			},
		},
		{
			ManagerID:   "demo-user-8",
			Name:        "Mandarin Oriental Bangkok",
			Description: "Riverside luxury with traditional Thai hospitality. Experience the perfect blend of modern luxury and Thai culture.",
			Location:    "Chao Phraya River, Bangkok",
			City:        "Bangkok",
			Country:     "Thailand",
			Category:    "luxury",
			Rating:      4.6,
			Images:      demoImages,
			Amenities:   []string{"River Views", "Spa", "Thai Restaurant", "Rooftop Pool", "Concierge", "Cultural Tours", "Cooking Classes", "Tuk Tuk Tours"},
			RoomTypes: []domainhotel.RoomType{
				{Type: "Deluxe Room", Price: 400, MaxGuests: 2, Available: 8},
				{Type: "Suite", Price: 800, MaxGuests: 4, Available: 4},
				{Type: "Presidential Suite", Price: 1500, MaxGuests: 6, Available: 1},
			},
		},
		{
			ManagerID:   "demo-user-9",
			Name:        "The Langham Sydney",
			Description: "Harbor views and contemporary luxury. Enjoy stunning views of Sydney Harbor and the Opera House from this modern luxury hotel.",
			Location:    "Circular Quay, Sydney",
			City:        "Sydney",
			Country:     "Australia",
			Category:    "business",
			Rating:      4.4,
			Images:      demoImages,
			Amenities:   []string{"Harbor Views", "Rooftop Pool", "Fine Dining", "Opera House Views", "Concierge", "Fitness Center", "Wine Bar", "Harbor Cruises"},
			RoomTypes: []domainhotel.RoomType{
				{Type: "Deluxe Room", Price: 500, MaxGuests: 2, Available: 12},
				{Type: "Suite", Price: 1000, MaxGuests: 4, Available: 6},
				{Type: "Presidential Suite", Price: 2000, MaxGuests: 6, Available: 2},
			},
		},
		{
			ManagerID:   "demo-user-10",
			Name:        "The Oberoi Udaipur",
			Description: "Palace hotel on Lake Pichola. Experience royal luxury in this magnificent palace hotel with stunning lake views.",
			Location:    "Lake Pichola, Udaipur",
			City:        "Udaipur",
			Country:     "India",
			Category:    "resort",
			Rating:      4.8,
			Images:      demoImages,
			Amenities:   []string{"Lake Views", "Palace Architecture", "Spa", "Cultural Experiences", "Fine Dining", "Boat Rides", "Elephant Rides", "Royal Gardens"},
			RoomTypes: []domainhotel.RoomType{
				{Type: "Deluxe Room", Price: 700, MaxGuests: 2, Available: 6},
				{Type: "Suite", Price: 1400, MaxGuests: 4, Available: 4},
				{Type: "Presidential Suite", Price: 2800, MaxGuests: 6, Available: 2},
			},
		},
	}
}
