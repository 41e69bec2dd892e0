package request

type CommentRequest struct {
	Text string `json:"comment_text" binding:"required,notblank"`
}
