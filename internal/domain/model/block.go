package model

import "encoding/json"

type BlockKind string

const (
	BlockImage     BlockKind = "image"
	BlockVideo     BlockKind = "video"
	BlockBookmark  BlockKind = "bookmark"
	BlockParagraph BlockKind = "paragraph"
	BlockCallout   BlockKind = "callout"
)

// Block is a content block of an entry. Exactly one payload matching Kind
// is set; blocks of kinds this bridge does not understand carry no payload.
type Block struct {
	ID   string
	Kind BlockKind

	Image     *FileContent
	Video     *FileContent
	Bookmark  *BookmarkContent
	Paragraph *TextContent
	Callout   *CalloutContent

	// Raw is the block as returned by the external service.
	Raw json.RawMessage
}

// FileContent is the payload of image and video blocks. The external
// service either links an external URL or hosts the file itself.
type FileContent struct {
	ExternalURL string
	HostedURL   string
	Caption     string
}

// URL prefers the external location over the hosted one.
func (f *FileContent) URL() string {
	if f.ExternalURL != "" {
		return f.ExternalURL
	}

	return f.HostedURL
}

type BookmarkContent struct {
	URL     string
	Caption string
}

type TextContent struct {
	Text string
}

type CalloutContent struct {
	Text  string
	Emoji string
}

func NewImageBlock(url, caption string) Block {
	return Block{Kind: BlockImage, Image: &FileContent{ExternalURL: url, Caption: caption}}
}

func NewVideoBlock(url, caption string) Block {
	return Block{Kind: BlockVideo, Video: &FileContent{ExternalURL: url, Caption: caption}}
}

// NewMediaBlock builds an image or video block for kind.
func NewMediaBlock(kind MediaKind, url, caption string) Block {
	if kind == MediaImage {
		return NewImageBlock(url, caption)
	}

	return NewVideoBlock(url, caption)
}

func NewBookmarkBlock(url, caption string) Block {
	return Block{Kind: BlockBookmark, Bookmark: &BookmarkContent{URL: url, Caption: caption}}
}

func NewParagraphBlock(text string) Block {
	return Block{Kind: BlockParagraph, Paragraph: &TextContent{Text: text}}
}

func NewCalloutBlock(text, emoji string) Block {
	return Block{Kind: BlockCallout, Callout: &CalloutContent{Text: text, Emoji: emoji}}
}

// Media extracts the media descriptor carried by b, if any.
func (b Block) Media() (MediaDescriptor, bool) {
	switch b.Kind {
	case BlockImage:
		if b.Image == nil {
			return MediaDescriptor{}, false
		}

		return MediaDescriptor{Type: MediaImage, URL: b.Image.URL(), Caption: b.Image.Caption}, true

	case BlockVideo:
		if b.Video == nil {
			return MediaDescriptor{}, false
		}

		return MediaDescriptor{Type: MediaVideo, URL: b.Video.URL(), Caption: b.Video.Caption}, true

	case BlockBookmark:
		if b.Bookmark == nil {
			return MediaDescriptor{}, false
		}

		return MediaDescriptor{Type: MediaBookmark, URL: b.Bookmark.URL, Caption: b.Bookmark.Caption}, true

	default:
		return MediaDescriptor{}, false
	}
}

// FirstMedia returns the descriptor of the first media block. Any further
// media blocks of the same entry are ignored.
func FirstMedia(blocks []Block) *MediaDescriptor {
	for _, b := range blocks {
		if m, ok := b.Media(); ok {
			return &m
		}
	}

	return nil
}
