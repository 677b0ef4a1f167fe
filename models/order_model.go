package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is a single product line inside a sub-order.
type OrderItem struct {
	ProductID primitive.ObjectID `json:"productId" bson:"productId"`
	Name      string             `json:"name" bson:"name"`
	Quantity  int                `json:"quantity" bson:"quantity"`
	Price     float64            `json:"price" bson:"price"`
}

type Customer struct {
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
	Phone string `json:"phone,omitempty" bson:"phone,omitempty"`
}

type Payment struct {
	Method        string `json:"method" bson:"method"`
	TransactionID string `json:"transactionId,omitempty" bson:"transactionId,omitempty"`
	Status        string `json:"status" bson:"status"` // pending, completed, failed
}

// SubOrder is one shipment-level order inside the parent document. The
// admin dashboard updates status at this level.
type SubOrder struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	Items       []OrderItem        `json:"items" bson:"items"`
	Customer    Customer           `json:"customer" bson:"customer"`
	Payment     Payment            `json:"payment" bson:"payment"`
	OrderStatus string             `json:"orderStatus" bson:"orderStatus"`
	TotalAmount float64            `json:"totalAmount" bson:"totalAmount"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

// Order is the parent document wrapping a customer's sub-orders.
type Order struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId"`
	Orders    []SubOrder         `json:"orders" bson:"orders"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
