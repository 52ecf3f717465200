package domain

// PostalAddress is the address shape shared by customers and client addresses.
type PostalAddress struct {
	Name    string `json:"name,omitempty" dynamodbav:"name" validate:"omitempty,max=128"`
	Line1   string `json:"line1" dynamodbav:"line1" validate:"required,max=128"`
	Line2   string `json:"line2,omitempty" dynamodbav:"line2" validate:"omitempty,max=128"`
	City    string `json:"city" dynamodbav:"city" validate:"required,max=128"`
	State   string `json:"state" dynamodbav:"state" validate:"required,usstate"`
	ZipCode string `json:"zipCode" dynamodbav:"zip_code" validate:"required,zipcode"`
}

// Address is a postal address owned by a client.
type Address struct {
	ID       string `json:"id" dynamodbav:"id"`
	ClientID string `json:"clientId" dynamodbav:"client_id"`
	PostalAddress
}

func (a Address) ResourceID() string { return a.ID }
func (a Address) UniqueKey() string  { return "" }

// WithIdentity ignores branchID; addresses inherit the client's branch.
func (a Address) WithIdentity(id, _ string) Address {
	a.ID = id
	return a
}
