package entity

// UploadResult is what an upload or add-url call produced.
type UploadResult struct {
	PageID  string
	Message string
	// ArchiveLocation is set when the payload was archived in object storage.
	ArchiveLocation string
}

// ArchiveResult describes an object written to the payload archive.
type ArchiveResult struct {
	Bucket   string
	Key      string
	Location string
	Size     int64
	Type     string
}
