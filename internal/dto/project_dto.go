package dto

type CreateProjectRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Content     *string `json:"content"`
	ImageURL    *string `json:"image_url"`
	VideoURL    *string `json:"video_url"`
	DemoURL     *string `json:"demo_url"`
	ContactInfo *string `json:"contact_info"`
	CategoryID  *uint   `json:"category_id"`
}

// UpdateProjectRequest carries only the fields being changed; nil means
// leave the stored value alone.
type UpdateProjectRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Content     *string `json:"content"`
	ImageURL    *string `json:"image_url"`
	VideoURL    *string `json:"video_url"`
	DemoURL     *string `json:"demo_url"`
	ContactInfo *string `json:"contact_info"`
	CategoryID  *uint   `json:"category_id"`
}

type LikeResult struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"like_count"`
}
