package client

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"

	"mediabridge/internal/domain/dto"
	"mediabridge/pkg/utils"
)

// MaxSelectableFileSize is the largest file the form accepts. The bridge
// itself embeds far less; larger files are refused there.
const MaxSelectableFileSize int64 = 20 * 1024 * 1024

type Connectivity string

const (
	Checking  Connectivity = "checking"
	Connected Connectivity = "connected"
	Errored   Connectivity = "error"
	Offline   Connectivity = "offline"
)

// Tab is the active content kind of the form.
type Tab string

const (
	ImageTab Tab = "image"
	VideoTab Tab = "video"
	URLTab   Tab = "url"
)

type MessageKind string

const (
	NoMessage      MessageKind = ""
	SuccessMessage MessageKind = "success"
	ErrorMessage   MessageKind = "error"
)

type Message struct {
	Kind MessageKind
	Text string
}

type SelectedFile struct {
	Name        string
	ContentType string
	Size        int64
	Data        []byte
}

var (
	errNotConnected = errors.New("Backend server is not running. Please start the server first.")
	errFileTooLarge = errors.New("File size exceeds 20MB. Please use a smaller file.")
)

// ViewState is everything the form shows. Transitions never mutate the
// receiver; each returns the next state.
type ViewState struct {
	Tab          Tab
	Connectivity Connectivity

	Title          string
	Caption        string
	File           *SelectedFile
	UseExternalURL bool
	ExternalURL    string
	URL            string

	Busy    bool
	Message Message

	Entries     []dto.PageDescriptor
	GalleryOpen bool
}

func NewViewState() ViewState {
	return ViewState{Tab: ImageTab, Connectivity: Checking}
}

func (s ViewState) WithTab(tab Tab) ViewState {
	s.Tab = tab
	s.Message = Message{}

	return s
}

func (s ViewState) WithConnectivity(c Connectivity) ViewState {
	s.Connectivity = c

	return s
}

func (s ViewState) WithError(text string) ViewState {
	s.Message = Message{Kind: ErrorMessage, Text: text}

	return s
}

func (s ViewState) WithSuccess(text string) ViewState {
	s.Message = Message{Kind: SuccessMessage, Text: text}

	return s
}

// SelectFile accepts f when its type matches the active tab and it is small
// enough. A rejected file leaves the previous selection in place.
func (s ViewState) SelectFile(f SelectedFile) ViewState {
	if err := s.validateFile(f); err != nil {
		return s.WithError(err.Error())
	}

	s.File = &f
	s.Message = Message{}

	return s
}

func (s ViewState) validateFile(f SelectedFile) error {
	switch s.Tab {
	case ImageTab:
		if !utils.HasMediaPrefix(f.ContentType, "image") {
			return errors.New("Please select an image file (JPEG, PNG, GIF)")
		}
	case VideoTab:
		if !utils.HasMediaPrefix(f.ContentType, "video") {
			return errors.New("Please select a video file")
		}
	}

	if f.Size > MaxSelectableFileSize {
		return errFileTooLarge
	}

	return nil
}

// ValidateUpload checks everything SubmitUpload needs before it may touch
// the network.
func (s ViewState) ValidateUpload() error {
	if s.Connectivity != Connected {
		return errNotConnected
	}

	if s.UseExternalURL {
		if err := validation.Validate(strings.TrimSpace(s.ExternalURL),
			validation.Required.Error("Please enter an external URL")); err != nil {
			return err
		}
	} else if s.File == nil {
		return errors.New("Please select a file to upload or use an external URL")
	}

	return validation.Validate(strings.TrimSpace(s.Title),
		validation.Required.Error("Please enter a title for the page"))
}

func (s ViewState) ValidateURLEntry() error {
	if s.Connectivity != Connected {
		return errNotConnected
	}

	if err := validation.Validate(strings.TrimSpace(s.URL),
		validation.Required.Error("Please enter a URL")); err != nil {
		return err
	}

	return validation.Validate(strings.TrimSpace(s.Title),
		validation.Required.Error("Please enter a title for the page"))
}

// UploadRequest is the request for the current form. Exactly one of file
// and external URL is set, chosen by UseExternalURL.
func (s ViewState) UploadRequest() UploadRequest {
	req := UploadRequest{Title: s.Title, Caption: s.Caption, Type: string(s.Tab)}
	if s.UseExternalURL {
		req.ExternalURL = s.ExternalURL
	} else {
		req.File = s.File
	}

	return req
}

func (s ViewState) Submitting() ViewState {
	s.Busy = true
	s.Message = Message{}

	return s
}

// Submitted clears the form after a successful submission.
func (s ViewState) Submitted(text string) ViewState {
	s.Busy = false
	s.File = nil
	s.ExternalURL = ""
	s.URL = ""
	s.Caption = ""
	s.Title = ""

	return s.WithSuccess(text)
}

// SubmitFailed keeps the form as it was so the user can retry.
func (s ViewState) SubmitFailed(text string) ViewState {
	s.Busy = false

	return s.WithError(text)
}

func (s ViewState) EntriesLoaded(entries []dto.PageDescriptor) ViewState {
	s.Entries = entries
	s.GalleryOpen = true

	return s
}

func (s ViewState) CloseGallery() ViewState {
	s.GalleryOpen = false

	return s
}
