package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Client represents a studio member. Clients are provisioned by an admin,
// reference exactly one Package, and are deactivated rather than deleted.
type Client struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name      string              `bson:"name" json:"name"`
	Email     string              `bson:"email" json:"email"`
	Phone     string              `bson:"phone,omitempty" json:"phone,omitempty"`
	PackageID *primitive.ObjectID `bson:"packageId,omitempty" json:"packageId,omitempty"` // Reference to the client's Package
	Allergies []string            `bson:"allergies,omitempty" json:"allergies,omitempty"`

	// Subscription window. End date is optional for rolling subscriptions.
	SubscriptionStart *time.Time `bson:"subscriptionStart,omitempty" json:"subscriptionStart,omitempty"`
	SubscriptionEnd   *time.Time `bson:"subscriptionEnd,omitempty" json:"subscriptionEnd,omitempty"`

	IsActive  bool      `bson:"isActive" json:"isActive"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// HasPackage reports whether the client carries a resolvable package reference.
func (c *Client) HasPackage() bool {
	return c.PackageID != nil && *c.PackageID != primitive.NilObjectID
}
