package models

import "time"

type Review struct {
	ReviewID  string    `json:"reviewid" bson:"reviewid"`
	PackageID string    `json:"packageId" bson:"packageId"`
	Name      string    `json:"name" bson:"name"`
	Rating    int       `json:"rating" bson:"rating"` // 1..5
	Comment   string    `json:"comment" bson:"comment"`
	Approved  bool      `json:"approved" bson:"approved"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

type NewsletterSubscriber struct {
	Email        string    `json:"email" bson:"email"`
	SubscribedAt time.Time `json:"subscribedAt" bson:"subscribedAt"`
}
