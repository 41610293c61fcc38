package models

// Paging describes one page of a search result.
type Paging struct {
	Page      int `json:"page"`
	TotalItem int `json:"total_item"`
	TotalPage int `json:"total_page"`
}
