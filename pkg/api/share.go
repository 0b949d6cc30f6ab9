package api

// Share type codes, wire-compatible with the original clients.
const (
	ShareTypeUser      = 0
	ShareTypeGroup     = 1
	ShareTypeUserGroup = 2
	ShareTypeLink      = 3
	ShareTypeRoom      = 10
)

type Share struct {
	ID          int64  `json:"id"`
	DatasetID   int64  `json:"datasetId"`
	Type        int    `json:"type"`
	UIDOwner    string `json:"uid_owner,omitempty"`
	Token       string `json:"token,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	// Pass reports whether a viewer password is set; the hash itself is
	// never exposed.
	Pass bool `json:"pass"`
}

type CreateShareRequest struct {
	DatasetID int64  `json:"datasetId" validate:"required,gt=0"`
	Type      int    `json:"type"      validate:"shareType"`
	User      string `json:"user"`
}

type UpdateShareRequest struct {
	Password string `json:"password"`
}
