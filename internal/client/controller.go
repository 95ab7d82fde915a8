package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/dezh-tech/immortal/pkg/logger"

	"mediabridge/internal/domain/dto"
)

// ConfirmFunc asks the user to confirm deleting the entry titled title.
type ConfirmFunc func(title string) bool

// Controller drives the bridge on behalf of a single form. It is not safe
// for concurrent use.
type Controller struct {
	bridge  Bridge
	confirm ConfirmFunc
	state   ViewState
}

func NewController(bridge Bridge, confirm ConfirmFunc) *Controller {
	return &Controller{
		bridge:  bridge,
		confirm: confirm,
		state:   NewViewState(),
	}
}

func (c *Controller) State() ViewState {
	return c.state
}

// Edit applies a local change to the form fields.
func (c *Controller) Edit(fn func(s ViewState) ViewState) {
	c.state = fn(c.state)
}

// CheckHealth probes the bridge once. A bridge that answers with an error
// status is "error"; one that cannot be reached is "offline".
func (c *Controller) CheckHealth(ctx context.Context) Connectivity {
	c.state = c.state.WithConnectivity(Checking)

	err := c.bridge.Health(ctx)
	switch {
	case err == nil:
		c.state = c.state.WithConnectivity(Connected)
	case IsStatusError(err):
		logger.Warn("bridge returned error", "err", err)
		c.state = c.state.WithConnectivity(Errored)
	default:
		logger.Warn("failed to connect to bridge", "err", err)
		c.state = c.state.WithConnectivity(Offline)
	}

	return c.state.Connectivity
}

func (c *Controller) SelectFile(f SelectedFile) error {
	c.state = c.state.SelectFile(f)
	if c.state.Message.Kind == ErrorMessage {
		return errors.New(c.state.Message.Text)
	}

	return nil
}

func (c *Controller) SubmitUpload(ctx context.Context) (dto.CreatePageResponse, error) {
	if err := c.state.ValidateUpload(); err != nil {
		c.state = c.state.WithError(err.Error())

		return dto.CreatePageResponse{}, err
	}

	kind := "Video"
	if c.state.Tab == ImageTab {
		kind = "Image"
	}

	c.state = c.state.Submitting()
	resp, err := c.bridge.Upload(ctx, c.state.UploadRequest())
	if err != nil {
		c.state = c.state.SubmitFailed("Upload failed: " + err.Error())

		return resp, err
	}

	c.state = c.state.Submitted(kind + " uploaded successfully to Notion database!")
	c.refreshGallery(ctx)

	return resp, nil
}

func (c *Controller) SubmitURLEntry(ctx context.Context) (dto.CreatePageResponse, error) {
	if err := c.state.ValidateURLEntry(); err != nil {
		c.state = c.state.WithError(err.Error())

		return dto.CreatePageResponse{}, err
	}

	c.state = c.state.Submitting()
	resp, err := c.bridge.AddURL(ctx, dto.AddURLRequest{
		Title:   c.state.Title,
		URL:     c.state.URL,
		Caption: c.state.Caption,
	})
	if err != nil {
		c.state = c.state.SubmitFailed("Failed to add URL: " + err.Error())

		return resp, err
	}

	c.state = c.state.Submitted("URL content added successfully to Notion database!")
	c.refreshGallery(ctx)

	return resp, nil
}

// LoadEntries replaces the gallery with the bridge's current listing. On
// failure the previous gallery stays as it was.
func (c *Controller) LoadEntries(ctx context.Context) error {
	if c.state.Connectivity != Connected {
		c.state = c.state.WithError("Backend server is not running.")

		return errNotConnected
	}

	entries, err := c.bridge.ListPages(ctx)
	if err != nil {
		c.state = c.state.WithError("Failed to fetch pages: " + err.Error())

		return err
	}

	c.state = c.state.EntriesLoaded(entries).WithSuccess(fmt.Sprintf("Loaded %d pages from Notion", len(entries)))

	return nil
}

// DeleteEntry archives an entry after the user confirms, then reloads the
// gallery. Nothing is removed locally before the bridge agrees.
func (c *Controller) DeleteEntry(ctx context.Context, pageID, title string) (bool, error) {
	if c.confirm == nil || !c.confirm(title) {
		return false, nil
	}

	if err := c.bridge.DeletePage(ctx, pageID); err != nil {
		c.state = c.state.WithError("Failed to delete: " + err.Error())

		return false, err
	}

	c.state = c.state.WithSuccess(fmt.Sprintf("%q deleted successfully", title))

	return true, c.LoadEntries(ctx)
}

func (c *Controller) refreshGallery(ctx context.Context) {
	if !c.state.GalleryOpen {
		return
	}

	msg := c.state.Message
	if err := c.LoadEntries(ctx); err != nil {
		logger.Warn("gallery refresh failed", "err", err)

		return
	}
	c.state.Message = msg
}
