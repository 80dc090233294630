package entity

type FileStatus string

const (
	FileStatusLoaded  FileStatus = "LOADED"
	FileStatusSkipped FileStatus = "SKIPPED"
	FileStatusFailed  FileStatus = "FAILED"
)

// Role is the meaning of a price-list column after header normalization.
type Role string

const (
	RoleName   Role = "name"
	RolePrice  Role = "price"
	RoleWeight Role = "weight"
)
