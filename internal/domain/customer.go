package domain

import "time"

// CustomerStatus is the lifecycle state of a customer at the core bank.
type CustomerStatus string

const (
	CustomerPending CustomerStatus = "Pending"
	CustomerActive  CustomerStatus = "Active"
	CustomerBlocked CustomerStatus = "Blocked"
)

type Customer struct {
	ID              string         `json:"id" dynamodbav:"id"`
	BranchID        string         `json:"branchId" dynamodbav:"branch_id"`
	FirstName       string         `json:"firstName" dynamodbav:"first_name"`
	MiddleName      string         `json:"middleName,omitempty" dynamodbav:"middle_name"`
	LastName        string         `json:"lastName" dynamodbav:"last_name"`
	Suffix          string         `json:"suffix,omitempty" dynamodbav:"suffix"`
	Email           string         `json:"email" dynamodbav:"email"`
	PhoneNumber     string         `json:"phoneNumber" dynamodbav:"phone_number"`
	SSN             string         `json:"ssn" dynamodbav:"ssn"`
	Metadata        string         `json:"metadata,omitempty" dynamodbav:"metadata"`
	Status          CustomerStatus `json:"status" dynamodbav:"status"`
	Terms           bool           `json:"terms" dynamodbav:"terms"`
	PhysicalAddress PostalAddress  `json:"physicalAddress" dynamodbav:"physical_address"`
	MailingAddress  *PostalAddress `json:"mailingAddress,omitempty" dynamodbav:"mailing_address"`
	CreatedAt       time.Time      `json:"createdAt" dynamodbav:"created_at"`
}

func (c Customer) ResourceID() string { return c.ID }
func (c Customer) UniqueKey() string  { return c.Email }

func (c Customer) WithIdentity(id, branchID string) Customer {
	c.ID, c.BranchID = id, branchID
	return c
}

type CreateCustomerRequest struct {
	FirstName       string         `json:"firstName" validate:"required,max=128"`
	MiddleName      string         `json:"middleName" validate:"omitempty,max=128"`
	LastName        string         `json:"lastName" validate:"required,max=128"`
	Suffix          string         `json:"suffix" validate:"omitempty,max=24"`
	Email           string         `json:"email" validate:"required,email"`
	PhoneNumber     string         `json:"phoneNumber" validate:"required,phone"`
	SSN             string         `json:"ssn" validate:"required,ssn"`
	Metadata        string         `json:"metadata" validate:"omitempty,json"`
	Terms           bool           `json:"terms"`
	PhysicalAddress *PostalAddress `json:"physicalAddress" validate:"required"`
	MailingAddress  *PostalAddress `json:"mailingAddress" validate:"omitempty"`
}

// UpdateCustomerRequest overlays the provided fields. The SSN is immutable and
// deliberately absent, so a body carrying it is rejected as an unknown field.
type UpdateCustomerRequest struct {
	FirstName       *string        `json:"firstName" validate:"omitempty,max=128"`
	MiddleName      *string        `json:"middleName" validate:"omitempty,max=128"`
	LastName        *string        `json:"lastName" validate:"omitempty,max=128"`
	Suffix          *string        `json:"suffix" validate:"omitempty,max=24"`
	Email           *string        `json:"email" validate:"omitempty,email"`
	PhoneNumber     *string        `json:"phoneNumber" validate:"omitempty,phone"`
	Metadata        *string        `json:"metadata" validate:"omitempty,json"`
	Status          *string        `json:"status" validate:"omitempty,oneof=Pending Active Blocked"`
	PhysicalAddress *PostalAddress `json:"physicalAddress" validate:"omitempty"`
	MailingAddress  *PostalAddress `json:"mailingAddress" validate:"omitempty"`
}
