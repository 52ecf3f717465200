package dynamo

// Attribute and index names shared by every resource table.
const (
	attrID     = "id"
	attrEmail  = "email"
	emailIndex = "email-index"
)
