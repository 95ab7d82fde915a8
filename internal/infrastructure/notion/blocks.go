package notion

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jomei/notionapi"

	"mediabridge/internal/domain/model"
)

const emojiIcon notionapi.FileType = "emoji"

// ListBlocks returns all top-level content blocks of a page.
func (c *Client) ListBlocks(ctx context.Context, pageID string) ([]model.Block, error) {
	blocks := make([]model.Block, 0)
	pagination := &notionapi.Pagination{PageSize: c.cfg.PageSize}

	for {
		resp, err := c.children(ctx, pageID, pagination)
		if err != nil {
			return nil, c.fail("list blocks", err)
		}

		for _, sdkBlock := range resp.Results {
			b, err := decodeBlock(sdkBlock)
			if err != nil {
				return nil, fmt.Errorf("notion: decode block: %w", err)
			}
			blocks = append(blocks, b)
		}

		if !resp.HasMore || resp.NextCursor == "" {
			return blocks, nil
		}
		pagination.StartCursor = notionapi.Cursor(resp.NextCursor)
	}
}

func (c *Client) children(ctx context.Context, pageID string, p *notionapi.Pagination) (*notionapi.GetChildrenResponse, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	return c.api.Block.GetChildren(ctx, notionapi.BlockID(pageID), p)
}

func textOf(s string) []notionapi.RichText {
	return []notionapi.RichText{{
		Type: notionapi.ObjectTypeText,
		Text: &notionapi.Text{Content: s},
	}}
}

// captionOf encodes an optional caption; an empty caption is left out.
func captionOf(s string) []notionapi.RichText {
	if s == "" {
		return nil
	}

	return textOf(s)
}

// firstText is the content of the first text fragment, "" when absent.
func firstText(rt []notionapi.RichText) string {
	if len(rt) == 0 || rt[0].Text == nil {
		return ""
	}

	return rt[0].Text.Content
}

func basic(kind notionapi.BlockType) notionapi.BasicBlock {
	return notionapi.BasicBlock{Object: notionapi.ObjectTypeBlock, Type: kind}
}

func encodeBlock(b model.Block) (notionapi.Block, bool) {
	switch b.Kind {
	case model.BlockImage:
		if b.Image == nil {
			return nil, false
		}

		return &notionapi.ImageBlock{
			BasicBlock: basic(notionapi.BlockTypeImage),
			Image: notionapi.Image{
				Type:     notionapi.FileTypeExternal,
				External: &notionapi.FileObject{URL: b.Image.ExternalURL},
				Caption:  captionOf(b.Image.Caption),
			},
		}, true

	case model.BlockVideo:
		if b.Video == nil {
			return nil, false
		}

		return &notionapi.VideoBlock{
			BasicBlock: basic(notionapi.BlockTypeVideo),
			Video: notionapi.Video{
				Type:     notionapi.FileTypeExternal,
				External: &notionapi.FileObject{URL: b.Video.ExternalURL},
				Caption:  captionOf(b.Video.Caption),
			},
		}, true

	case model.BlockBookmark:
		if b.Bookmark == nil {
			return nil, false
		}

		return &notionapi.BookmarkBlock{
			BasicBlock: basic(notionapi.BlockTypeBookmark),
			Bookmark: notionapi.Bookmark{
				URL:     b.Bookmark.URL,
				Caption: captionOf(b.Bookmark.Caption),
			},
		}, true

	case model.BlockParagraph:
		if b.Paragraph == nil {
			return nil, false
		}

		return &notionapi.ParagraphBlock{
			BasicBlock: basic(notionapi.BlockTypeParagraph),
			Paragraph:  notionapi.Paragraph{RichText: textOf(b.Paragraph.Text)},
		}, true

	case model.BlockCallout:
		if b.Callout == nil {
			return nil, false
		}

		callout := &notionapi.CalloutBlock{
			BasicBlock: basic(notionapi.BlockTypeCallout),
			Callout:    notionapi.Callout{RichText: textOf(b.Callout.Text)},
		}
		if b.Callout.Emoji != "" {
			emoji := notionapi.Emoji(b.Callout.Emoji)
			callout.Callout.Icon = &notionapi.Icon{Type: emojiIcon, Emoji: &emoji}
		}

		return callout, true
	}

	return nil, false
}

func fileContent(caption []notionapi.RichText, hosted, external *notionapi.FileObject) *model.FileContent {
	content := &model.FileContent{Caption: firstText(caption)}
	if external != nil {
		content.ExternalURL = external.URL
	}
	if hosted != nil {
		content.HostedURL = hosted.URL
	}

	return content
}

// decodeBlock maps the SDK's concrete block types onto model.Block. Kinds
// the SDK does not know come back untyped and are reported as unsupported.
func decodeBlock(sdkBlock notionapi.Block) (model.Block, error) {
	raw, err := json.Marshal(sdkBlock)
	if err != nil {
		return model.Block{}, err
	}

	kind := sdkBlock.GetType()
	if kind == "" {
		kind = notionapi.BlockTypeUnsupported
	}

	b := model.Block{
		ID:   sdkBlock.GetID().String(),
		Kind: model.BlockKind(kind),
		Raw:  raw,
	}

	switch v := sdkBlock.(type) {
	case *notionapi.ImageBlock:
		b.Image = fileContent(v.Image.Caption, v.Image.File, v.Image.External)

	case *notionapi.VideoBlock:
		b.Video = fileContent(v.Video.Caption, v.Video.File, v.Video.External)

	case *notionapi.BookmarkBlock:
		b.Bookmark = &model.BookmarkContent{URL: v.Bookmark.URL, Caption: firstText(v.Bookmark.Caption)}

	case *notionapi.ParagraphBlock:
		b.Paragraph = &model.TextContent{Text: firstText(v.Paragraph.RichText)}

	case *notionapi.CalloutBlock:
		b.Callout = &model.CalloutContent{Text: firstText(v.Callout.RichText)}
		if v.Callout.Icon != nil && v.Callout.Icon.Emoji != nil {
			b.Callout.Emoji = string(*v.Callout.Icon.Emoji)
		}
	}

	return b, nil
}
