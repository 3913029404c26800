// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package semanticscholar

// Graph API JSON structures. Papers carry only the fields the collection
// requests; everything else in a response survives in the persisted raw
// body.

// SearchResponse is the envelope of a paper-search response.
type SearchResponse struct {
	Total  int     `json:"total"`
	Offset int     `json:"offset"`
	Next   int     `json:"next"`
	Data   []Paper `json:"data"`
}

// Paper is a single-paper metadata record. For search hits the citation
// and reference lists are absent; full fetches populate them.
type Paper struct {
	PaperID          string     `json:"paperId"`
	URL              string     `json:"url"`
	Title            string     `json:"title"`
	Abstract         string     `json:"abstract"`
	Year             int        `json:"year"`
	PublicationTypes []string   `json:"publicationTypes"`
	Venue            string     `json:"venue"`
	Authors          []Author   `json:"authors"`
	Citations        []PaperRef `json:"citations"`
	References       []PaperRef `json:"references"`
}

// PaperRef is one entry in a citation or reference list.
type PaperRef struct {
	PaperID       string   `json:"paperId"`
	FieldsOfStudy []string `json:"fieldsOfStudy,omitempty"`
}

// Author is a Graph API author record.
type Author struct {
	AuthorID string `json:"authorId"`
	Name     string `json:"name"`
}
