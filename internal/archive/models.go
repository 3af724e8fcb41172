package archive

// UploadSession is the server-assigned identity and one-time write
// destination returned by Initiate. It belongs to exactly one file's
// upload lifecycle and must never be reused for another file.
type UploadSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// FinalizationRecord is the payload submitted to Finalize. It is
// constructed once from the session and caller configuration and not
// mutated afterwards.
type FinalizationRecord struct {
	ID                 string  `json:"id"`
	Tags               string  `json:"tags"`
	Source             string  `json:"source"`
	Description        string  `json:"description"`
	OriginalUploadDate *string `json:"original_upload_date,omitempty"`
}

type initiateRequest struct {
	FileName      string `json:"file_name"`
	ContentLength int64  `json:"content_length"`
}

type apiError struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

type finalizeResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}
