package presentation

const (
	PageIDParam = "pageId"

	FileField        = "file"
	TitleField       = "title"
	CaptionField     = "caption"
	TypeField        = "type"
	ExternalURLField = "externalUrl"

	DefaultBodyLimit = "25M"
)
