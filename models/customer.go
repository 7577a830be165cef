package models

import "time"

// Customer is the shop's customer record referenced by invoices.
type Customer struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	PhoneNumber string    `bson:"phoneNumber" json:"phoneNumber"`
	Email       string    `bson:"email,omitempty" json:"email,omitempty"`
	Address     string    `bson:"address,omitempty" json:"address,omitempty"`
	Notes       string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
