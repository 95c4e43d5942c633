// internal/domain/models/product.go
package models

import "time"

// Product is a standalone catalog item (course, workbook, recorded class)
// granted to users independently of any enrollment.
type Product struct {
	ID          string    `bson:"_id" json:"produto_id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	ContentURL  string    `bson:"content_url,omitempty" json:"content_url,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// ProductAssignment grants one product to one user ("user_produto").
type ProductAssignment struct {
	ID        string    `bson:"_id" json:"user_produto_id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	ProductID string    `bson:"produto_id" json:"produto_id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
