package dto

type CommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=1000"`
}

type CommunityPostRequest struct {
	Content string `json:"content" binding:"required,min=1,max=2000"`
}
