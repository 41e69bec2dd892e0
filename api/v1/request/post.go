package request

type PostRequest struct {
	Title string `json:"title" binding:"required,notblank"`
	Body  string `json:"body"`
}
