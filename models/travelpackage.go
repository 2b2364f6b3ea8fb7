package models

import "time"

// TravelPackage is a sellable itinerary listed in the public catalog.
type TravelPackage struct {
	PackageID   string    `json:"packageid" bson:"packageid"`
	Name        string    `json:"name" bson:"name"`
	Destination string    `json:"destination" bson:"destination"`
	Duration    int       `json:"duration" bson:"duration"` // days
	Price       float64   `json:"price" bson:"price"`
	Description string    `json:"description" bson:"description"`
	Itinerary   []string  `json:"itinerary" bson:"itinerary"`
	Inclusions  []string  `json:"inclusions" bson:"inclusions"`
	Exclusions  []string  `json:"exclusions" bson:"exclusions"`
	Images      []string  `json:"images" bson:"images"`
	Active      bool      `json:"active" bson:"active"`
	Featured    bool      `json:"featured" bson:"featured"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}
