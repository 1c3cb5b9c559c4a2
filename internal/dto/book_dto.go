package dto

// BookInput is the editable part of a book as submitted by the add and edit forms.
type BookInput struct {
	Title       string
	Author      string
	Genre       string
	Description string
	CoverURL    string
}

// BookSuggestion is a normalized catalog match used to prefill the add form.
type BookSuggestion struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Genre       string `json:"genre"`
	Description string `json:"description"`
	CoverURL    string `json:"coverUrl"`
}

type SearchResponse struct {
	Results []BookSuggestion `json:"results"`
}
