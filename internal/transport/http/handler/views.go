package handler

import (
	"time"

	"github.com/go-baas-api/internal/domain"
)

// CustomerView is the customer as returned to API consumers. Only the last
// four digits of the SSN are exposed.
type CustomerView struct {
	ID              string                `json:"id"`
	BranchID        string                `json:"branchId"`
	FirstName       string                `json:"firstName"`
	MiddleName      string                `json:"middleName,omitempty"`
	LastName        string                `json:"lastName"`
	Suffix          string                `json:"suffix,omitempty"`
	Email           string                `json:"email"`
	PhoneNumber     string                `json:"phoneNumber"`
	SSN             string                `json:"ssn"`
	Metadata        string                `json:"metadata,omitempty"`
	Status          domain.CustomerStatus `json:"status"`
	Terms           bool                  `json:"terms"`
	PhysicalAddress domain.PostalAddress  `json:"physicalAddress"`
	MailingAddress  *domain.PostalAddress `json:"mailingAddress,omitempty"`
	CreatedAt       time.Time             `json:"createdAt"`
}

func toCustomerView(c *domain.Customer) *CustomerView {
	if c == nil {
		return nil
	}
	return &CustomerView{
		ID:              c.ID,
		BranchID:        c.BranchID,
		FirstName:       c.FirstName,
		MiddleName:      c.MiddleName,
		LastName:        c.LastName,
		Suffix:          c.Suffix,
		Email:           c.Email,
		PhoneNumber:     c.PhoneNumber,
		SSN:             maskSSN(c.SSN),
		Metadata:        c.Metadata,
		Status:          c.Status,
		Terms:           c.Terms,
		PhysicalAddress: c.PhysicalAddress,
		MailingAddress:  c.MailingAddress,
		CreatedAt:       c.CreatedAt,
	}
}

func maskSSN(ssn string) string {
	if len(ssn) < 4 {
		return ""
	}
	return "***-**-" + ssn[len(ssn)-4:]
}

// ClientView omits the password hash.
type ClientView struct {
	ID        string    `json:"id"`
	BranchID  string    `json:"branchId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Company   string    `json:"company"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Terms     bool      `json:"terms"`
	CreatedAt time.Time `json:"createdAt"`
}

func toClientView(c *domain.Client) *ClientView {
	if c == nil {
		return nil
	}
	return &ClientView{
		ID:        c.ID,
		BranchID:  c.BranchID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Company:   c.Company,
		Email:     c.Email,
		Phone:     c.Phone,
		Terms:     c.Terms,
		CreatedAt: c.CreatedAt,
	}
}
