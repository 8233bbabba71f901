package types

type CreateBookRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Author      string `json:"author" binding:"required,max=255"`
	Genre       string `json:"genre" binding:"required,max=100"`
	Description string `json:"description" binding:"omitempty,max=1000"`
}

// BookSearchRequest matches on any non-empty field; at least one is needed.
type BookSearchRequest struct {
	Title  string `json:"title" binding:"omitempty,max=255"`
	Author string `json:"author" binding:"omitempty,max=255"`
	Genre  string `json:"genre" binding:"omitempty,max=100"`
}

func (r *BookSearchRequest) Empty() bool {
	return r.Title == "" && r.Author == "" && r.Genre == ""
}

// 评分请求, stars 取值 0..5
type RateBookRequest struct {
	BookID  int64  `json:"book_id" binding:"required"`
	Stars   *int   `json:"stars" binding:"required,min=0,max=5"`
	Comment string `json:"comment" binding:"omitempty,max=1000"`
}
