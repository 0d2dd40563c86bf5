package models

// PatchVotesRequest carries the inc_votes payload for article and comment
// vote mutations. The field stays untyped so the validator can distinguish
// a missing value from a wrongly typed one.
type PatchVotesRequest struct {
	IncVotes interface{} `json:"inc_votes"`
}

// PostCommentRequest is the payload for POST /api/articles/:article_id/comments.
type PostCommentRequest struct {
	Username interface{} `json:"username"`
	Body     interface{} `json:"body"`
}

type PostTopicRequest struct {
	Slug        string `json:"slug" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type PostArticleRequest struct {
	Title         string `json:"title" validate:"required"`
	Topic         string `json:"topic" validate:"required"`
	Author        string `json:"author" validate:"required"`
	Body          string `json:"body" validate:"required"`
	ArticleImgURL string `json:"article_img_url"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// ArticleListParams holds already-validated list inputs: SortBy and Order
// are whitelist members, Topic and Author are nil when the filter is absent.
type ArticleListParams struct {
	SortBy string
	Order  string
	Topic  *string
	Author *string
}
