package domain

import "time"

type Client struct {
	ID           string    `json:"id" dynamodbav:"id"`
	BranchID     string    `json:"branchId" dynamodbav:"branch_id"`
	FirstName    string    `json:"firstName" dynamodbav:"first_name"`
	LastName     string    `json:"lastName" dynamodbav:"last_name"`
	Company      string    `json:"company" dynamodbav:"company"`
	Email        string    `json:"email" dynamodbav:"email"`
	Phone        string    `json:"phone" dynamodbav:"phone"`
	PasswordHash string    `json:"passwordHash" dynamodbav:"password_hash"`
	Terms        bool      `json:"terms" dynamodbav:"terms"`
	CreatedAt    time.Time `json:"createdAt" dynamodbav:"created_at"`
}

func (c Client) ResourceID() string { return c.ID }
func (c Client) UniqueKey() string  { return c.Email }

func (c Client) WithIdentity(id, branchID string) Client {
	c.ID, c.BranchID = id, branchID
	return c
}

type CreateClientRequest struct {
	FirstName string `json:"firstName" validate:"required,max=128"`
	LastName  string `json:"lastName" validate:"required,max=128"`
	Company   string `json:"company" validate:"required,max=128"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,phone"`
	Password  string `json:"password" validate:"required,min=6,max=64"`
	Terms     bool   `json:"terms"`
}

// UpdateClientRequest overlays the provided fields; company and terms are fixed
// at registration.
type UpdateClientRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,max=128"`
	LastName  *string `json:"lastName" validate:"omitempty,max=128"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone" validate:"omitempty,phone"`
	Password  *string `json:"password" validate:"omitempty,min=6,max=64"`
}
