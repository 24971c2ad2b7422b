package routines

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductRef is a product copied into a routine by value. It is not a
// reference to the catalog and does not change when the catalog does.
type ProductRef struct {
	Name  string `bson:"name" json:"name" example:"Niacinamide 10% + Zinc 1%"`
	Brand string `bson:"brand" json:"brand" example:"The Ordinary"`
}

// Routine is a named, ordered list of products owned by one account
type Routine struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id" swaggertype:"string"`
	Name      string             `bson:"name" json:"name" example:"Morning"`
	UserEmail string             `bson:"user_email" json:"user_email" example:"u@example.com"`
	Products  []ProductRef       `bson:"products" json:"products"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// BrandCount is one row of the top brands report
type BrandCount struct {
	Brand string `bson:"_id" json:"_id" example:"The Ordinary"`
	Count int    `bson:"count" json:"count" example:"3"`
}

type CreateRoutineRequest struct {
	Name      string `json:"name" binding:"required" example:"Morning"`
	UserEmail string `json:"user_email" binding:"required" example:"u@example.com"`
}

type CreateRoutineResponse struct {
	ID string `json:"id" example:"665f1c2e8b3a4d0012ab34cd"`
}

type AddStepRequest struct {
	Name  string `json:"name" binding:"required" example:"Niacinamide 10% + Zinc 1%"`
	Brand string `json:"brand" binding:"required" example:"The Ordinary"`
}

type RemoveStepRequest struct {
	ProductName string `json:"product_name" binding:"required" example:"Niacinamide 10% + Zinc 1%"`
}

type RemoveStepResponse struct {
	Message string         `json:"message" example:"Step removed successfully"`
	Outcome RemovalOutcome `json:"outcome" example:"STEP_REMOVED"`
}

// RemovalOutcome reports what remove_step found
type RemovalOutcome string

const (
	StepRemoved         RemovalOutcome = "STEP_REMOVED"
	RoutineNotFound     RemovalOutcome = "ROUTINE_NOT_FOUND"
	ProductNotInRoutine RemovalOutcome = "PRODUCT_NOT_IN_ROUTINE"
)

func (o RemovalOutcome) Message() string {
	switch o {
	case StepRemoved:
		return "Step removed successfully"
	case RoutineNotFound:
		return "Routine not found"
	case ProductNotInRoutine:
		return "Product not in routine"
	default:
		return string(o)
	}
}
