package model

import "time"

// UntitledPage is used when a page has no readable title.
const UntitledPage = "Untitled"

// Page is an entry as returned by a database query, before its content is
// read.
type Page struct {
	ID          string
	Title       string
	CreatedTime time.Time
}

// Entry is a page together with its (optional) media descriptor.
type Entry struct {
	Page
	Media *MediaDescriptor
}

// PageDraft is a page the bridge asks the external service to create.
type PageDraft struct {
	Title  string
	Blocks []Block
}
