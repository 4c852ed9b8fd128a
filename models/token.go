package models

import "time"

// GoogleToken holds a calendar owner's OAuth credential. One per owner.
type GoogleToken struct {
	ID           string    `bson:"id" json:"id"`
	OwnerID      string    `bson:"ownerId" json:"ownerId"`
	AccessToken  string    `bson:"accessToken" json:"-"`
	RefreshToken string    `bson:"refreshToken" json:"-"`
	ExpiryDate   time.Time `bson:"expiryDate" json:"expiryDate"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
