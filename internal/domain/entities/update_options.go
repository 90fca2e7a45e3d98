package entities

// UpdateOptions holds runtime options for the update command.
type UpdateOptions struct {
	Dir       string // Directory containing the manifest
	DryRun    bool
	Verbose   bool
	AssumeYes bool // Select every candidate and skip the confirmation
}

// CleanOptions holds runtime options for the clean command.
type CleanOptions struct {
	Root      string // Directory the walk starts from
	DryRun    bool
	Verbose   bool
	AssumeYes bool
}
