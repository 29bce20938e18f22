package contact

// Collection is the document store collection holding contact messages.
const Collection = "contactmessage"

// Message is a contact-form submission. Email is deliberately not
// checked for format; only presence is required.
type Message struct {
	Name    string `bson:"name" json:"name" binding:"required"`
	Email   string `bson:"email" json:"email" binding:"required"`
	Message string `bson:"message" json:"message" binding:"required"`
	Source  string `bson:"source,omitempty" json:"source,omitempty"`
}
