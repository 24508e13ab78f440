package entity

// Book berasal sepenuhnya dari API katalog eksternal dan tidak pernah
// dimutasi secara lokal.
type Book struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Authors       []string   `json:"authors"`
	Description   string     `json:"description"`
	PageCount     int        `json:"pageCount"`
	Publisher     string     `json:"publisher"`
	PublishedDate string     `json:"publishedDate"`
	ImageLinks    ImageLinks `json:"imageLinks"`
	AverageRating float64    `json:"averageRating,omitempty"`
}

type ImageLinks struct {
	SmallThumbnail string `json:"smallThumbnail,omitempty"`
	Thumbnail      string `json:"thumbnail,omitempty"`
}
