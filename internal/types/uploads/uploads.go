package uploads

// File describes one stored upload.
type File struct {
	URL          string `json:"url"`
	Key          string `json:"key"`
	Size         int64  `json:"size"`
	ContentType  string `json:"type"`
	OriginalName string `json:"original_name,omitempty"`
}

type PresignRequest struct {
	ContentType string `json:"content_type" validate:"required"`
	Folder      string `json:"folder"`
}

type PresignResponse struct {
	UploadURL string `json:"upload_url"`
	Key       string `json:"key"`
	PublicURL string `json:"public_url"`
	ExpiresIn int    `json:"expires_in"`
}

type DeleteRequest struct {
	Key string `json:"key" validate:"required"`
}
