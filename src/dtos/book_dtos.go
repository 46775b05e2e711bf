package dtos

// BookRequestDTO is the JSON payload for creating or updating a book
type BookRequestDTO struct {
	Title      string   `json:"title" binding:"required"`
	Author     string   `json:"author" binding:"required"`
	Editor     string   `json:"editor"`
	ISBN       string   `json:"isbn" binding:"required"`
	Length     int      `json:"length"`
	BookcaseId int      `json:"bookcase_id"`
	Genres     []string `json:"genres"`
}

// MoveBookRequestDTO is the JSON payload for re-placing a book
type MoveBookRequestDTO struct {
	BookcaseId int `json:"bookcase_id" binding:"required"`
}
