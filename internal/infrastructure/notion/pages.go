package notion

import (
	"context"
	"fmt"

	"github.com/jomei/notionapi"

	"mediabridge/internal/domain/model"
)

// CreatePage creates a page in the configured database and returns its id.
func (c *Client) CreatePage(ctx context.Context, draft model.PageDraft) (string, error) {
	req := &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: notionapi.DatabaseID(c.cfg.DatabaseID),
		},
		Properties: notionapi.Properties{
			c.cfg.TitleProperty: notionapi.TitleProperty{
				Type:  notionapi.PropertyTypeTitle,
				Title: textOf(draft.Title),
			},
		},
	}

	for _, b := range draft.Blocks {
		block, ok := encodeBlock(b)
		if !ok {
			return "", fmt.Errorf("notion: block of kind %q has no content", b.Kind)
		}
		req.Children = append(req.Children, block)
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	page, err := c.api.Page.Create(ctx, req)
	if err != nil {
		return "", c.fail("create page", err)
	}

	return page.ID.String(), nil
}

// ArchivePage soft-deletes a page.
func (c *Client) ArchivePage(ctx context.Context, pageID string) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	_, err := c.api.Page.Update(ctx, notionapi.PageID(pageID), &notionapi.PageUpdateRequest{Archived: true})
	if err != nil {
		return c.fail("archive page", err)
	}

	return nil
}

// QueryPages returns every page of the database, newest first, following
// the cursor until the API reports no more results.
func (c *Client) QueryPages(ctx context.Context) ([]model.Page, error) {
	req := &notionapi.DatabaseQueryRequest{
		Sorts: []notionapi.SortObject{{
			Timestamp: notionapi.TimestampCreated,
			Direction: notionapi.SortOrderDESC,
		}},
		PageSize: c.cfg.PageSize,
	}

	pages := make([]model.Page, 0)
	for {
		resp, err := c.query(ctx, req)
		if err != nil {
			return nil, c.fail("query database", err)
		}

		for i := range resp.Results {
			pages = append(pages, decodePage(&resp.Results[i], c.cfg.TitleProperty))
		}

		if !resp.HasMore || resp.NextCursor == "" {
			return pages, nil
		}
		req.StartCursor = resp.NextCursor
	}
}

func (c *Client) query(ctx context.Context, req *notionapi.DatabaseQueryRequest) (*notionapi.DatabaseQueryResponse, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	return c.api.Database.Query(ctx, notionapi.DatabaseID(c.cfg.DatabaseID), req)
}

func decodePage(p *notionapi.Page, titleProperty string) model.Page {
	title := ""
	if prop, ok := p.Properties[titleProperty].(*notionapi.TitleProperty); ok {
		title = firstText(prop.Title)
	}
	if title == "" {
		title = model.UntitledPage
	}

	return model.Page{
		ID:          p.ID.String(),
		Title:       title,
		CreatedTime: p.CreatedTime,
	}
}
