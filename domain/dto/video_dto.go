package dto

type VideoListRequest struct {
	Page     int    `form:"page"     binding:"omitempty,min=1"`
	Limit    int    `form:"limit"    binding:"omitempty,min=1,max=50"`
	Query    string `form:"query"    binding:"omitempty,max=200"`
	SortBy   string `form:"sortBy"   binding:"omitempty,oneof=createdAt views duration title"`
	SortType string `form:"sortType" binding:"omitempty,oneof=asc desc dsc"`
	UserID   string `form:"userId"   binding:"omitempty,objectid"`
}

type PublishVideoRequest struct {
	Title       string  `form:"title"       binding:"required,min=1,max=100"`
	Description string  `form:"description" binding:"required,max=5000"`
	Duration    float64 `form:"duration"    binding:"required,gt=0"`
}

// PublishVideoInput carries the saved upload paths alongside the metadata.
type PublishVideoInput struct {
	Title         string
	Description   string
	Duration      float64
	VideoPath     string
	ThumbnailPath string
}

type UpdateVideoRequest struct {
	Title       *string `form:"title"       binding:"omitempty,min=1,max=100"`
	Description *string `form:"description" binding:"omitempty,max=5000"`
}

type UpdateVideoInput struct {
	Title         *string
	Description   *string
	ThumbnailPath string
}

type PaginationRequest struct {
	Page  int `form:"page"  binding:"omitempty,min=1"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=50"`
}
