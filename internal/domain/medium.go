package domain

type MediumStatus string

const (
	MediumStatusAvailable MediumStatus = "AVAILABLE"
	MediumStatusBorrowed  MediumStatus = "BORROWED"
)

type Medium struct {
	ID         int32  `json:"id"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	Genre      string `json:"genre,omitempty"`
	Rating     int32  `json:"rating,omitempty"`     // 0-5
	AgeRating  int32  `json:"age_rating,omitempty"` // minimum age classification
	Identifier string `json:"identifier,omitempty"` // ISBN or EAN
	ShelfCode  string `json:"shelf_code,omitempty"`
	// Status is derived from the active borrowing set on every read,
	// never persisted.
	Status MediumStatus `json:"status,omitempty"`
}

// MediumPatch carries a partial update. Nil fields are left unchanged.
type MediumPatch struct {
	Title      *string `json:"title,omitempty"`
	Author     *string `json:"author,omitempty"`
	Genre      *string `json:"genre,omitempty"`
	Rating     *int32  `json:"rating,omitempty"`
	AgeRating  *int32  `json:"age_rating,omitempty"`
	Identifier *string `json:"identifier,omitempty"`
	ShelfCode  *string `json:"shelf_code,omitempty"`
}
