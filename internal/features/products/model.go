package products

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a catalog entry
type Product struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id" swaggertype:"string" example:"665f1c2e8b3a4d0012ab34cd"`
	Name     string             `bson:"name" json:"name" example:"Niacinamide 10% + Zinc 1%"`
	Brand    string             `bson:"brand" json:"brand" example:"The Ordinary"`
	Category string             `bson:"category" json:"category" example:"Serum"`
	Price    float64            `bson:"price" json:"price" example:"6.5"`
}

// CreateProductRequest represents a new catalog entry
type CreateProductRequest struct {
	Name     string  `json:"name" binding:"required" example:"Niacinamide 10% + Zinc 1%"`
	Brand    string  `json:"brand" binding:"required" example:"The Ordinary"`
	Category string  `json:"category" binding:"required" example:"Serum"`
	Price    float64 `json:"price" binding:"required" example:"6.5"`
}

// UpdateProductRequest is a partial update. Absent and null fields are left
// untouched.
type UpdateProductRequest struct {
	Name     *string  `json:"name,omitempty"`
	Brand    *string  `json:"brand,omitempty"`
	Category *string  `json:"category,omitempty"`
	Price    *float64 `json:"price,omitempty"`
}

// Fields returns the $set document for the non-null fields.
func (r *UpdateProductRequest) Fields() bson.M {
	fields := bson.M{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Brand != nil {
		fields["brand"] = *r.Brand
	}
	if r.Category != nil {
		fields["category"] = *r.Category
	}
	if r.Price != nil {
		fields["price"] = *r.Price
	}
	return fields
}

// UpdateOutcome describes what an update did to an existing product
type UpdateOutcome int

const (
	Updated UpdateOutcome = iota
	NoChanges
)

func (o UpdateOutcome) Message() string {
	if o == NoChanges {
		return "No changes made or data is same"
	}
	return "Product updated successfully"
}
