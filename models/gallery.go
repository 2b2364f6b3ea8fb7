package models

import "time"

// GalleryItem is a category-tagged media record. Caption stays in the
// document even when empty so clients always see the field.
type GalleryItem struct {
	ItemID      string    `json:"itemid" bson:"itemid"`
	URL         string    `json:"url" bson:"url"`
	Category    string    `json:"category" bson:"category"`
	Caption     string    `json:"caption" bson:"caption"`
	Destination string    `json:"destination,omitempty" bson:"destination,omitempty"`
	Order       int       `json:"order" bson:"order"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}
