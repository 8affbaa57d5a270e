package books

import (
	"encoding/json"
	"time"
)

// Date is a calendar date without a time-of-day component. It marshals to
// and from the YYYY-MM-DD wire format the book endpoints accept.
type Date struct {
	time.Time
}

func (date Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(date.Format(time.DateOnly))
}

func (date *Date) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	parsed, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return err
	}
	date.Time = parsed
	return nil
}

// Book represents a catalogued book record owned by exactly one user.
type Book struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Published Date      `json:"published"`
	Pages     int       `json:"pages"`
	Price     float64   `json:"price"`
	OwnerID   string    `json:"owner"` // set once at creation, never reassigned
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Global field names for validation
const (
	FieldTitle     = "title"
	FieldAuthor    = "author"
	FieldPublished = "published"
	FieldPages     = "pages"
	FieldPrice     = "price"
)
