package usecase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/gabriel-vasile/mimetype"
	validation "github.com/go-ozzo/ozzo-validation"

	"mediabridge/internal/domain/entity"
	"mediabridge/internal/domain/model"
	"mediabridge/internal/domain/repository/broker"
	"mediabridge/internal/domain/repository/metrics"
	"mediabridge/internal/domain/repository/minio"
	"mediabridge/internal/domain/repository/notion"
)

// DefaultEmbedLimit is the largest file the external service accepts inside
// a page creation request.
const DefaultEmbedLimit int64 = 5 * 1024 * 1024

const fileTooLargeMessage = "File too large. Notion API only supports files up to 5MB when embedding. " +
	"Please upload your file to an external service (like Imgur, Cloudinary, etc.) and use the URL instead."

const fileAdvisory = "💡 Note: File has been uploaded. For best results, upload images/videos to an " +
	"external hosting service and paste the URL instead."

const fileCreatedMessage = "Page created with file information. For images/videos, please use external URLs " +
	"for better results."

const (
	fileAdvisoryEmoji = "💡"
	noCaption         = "No caption provided"
)

type UploaderConfig struct {
	EmbedLimit int64 `yaml:"embed_limit_bytes"`
}

type Uploader struct {
	writer        notion.Writer
	publisher     broker.Publisher
	minioUploader minio.Uploader
	minioRemover  minio.Remover
	recorder      metrics.Recorder
	embedLimit    int64
}

// NewUploader builds the upload usecase. minioUploader and minioRemover may
// be nil, in which case accepted files are not archived.
func NewUploader(writer notion.Writer, publisher broker.Publisher, minioUploader minio.Uploader,
	minioRemover minio.Remover, recorder metrics.Recorder, cfg UploaderConfig,
) *Uploader {
	limit := cfg.EmbedLimit
	if limit <= 0 {
		limit = DefaultEmbedLimit
	}

	return &Uploader{
		writer:        writer,
		publisher:     publisher,
		minioUploader: minioUploader,
		minioRemover:  minioRemover,
		recorder:      recorder,
		embedLimit:    limit,
	}
}

func (u *Uploader) Upload(ctx context.Context, in entity.UploadInput) (entity.UploadResult, error) {
	start := time.Now()
	result, err := u.upload(ctx, in)
	u.recorder.RecordOperation("upload", time.Since(start), err)

	return result, err
}

func (u *Uploader) upload(ctx context.Context, in entity.UploadInput) (entity.UploadResult, error) {
	err := validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required.Error("title is required")),
		validation.Field(&in.Type, validation.In("image", "video", "url").Error("type must be image, video or url")),
	)
	if err != nil {
		return entity.UploadResult{}, validationFailure(err)
	}

	if in.ExternalURL != "" {
		return u.uploadExternal(ctx, in)
	}

	if in.File == nil {
		return entity.UploadResult{}, &entity.Failure{
			Status:  http.StatusBadRequest,
			Message: "No file or external URL provided",
		}
	}

	return u.uploadFile(ctx, in)
}

func (u *Uploader) uploadExternal(ctx context.Context, in entity.UploadInput) (entity.UploadResult, error) {
	kind := model.MediaKindFromUploadType(in.Type)

	pageID, err := u.writer.CreatePage(ctx, model.PageDraft{
		Title:  in.Title,
		Blocks: []model.Block{model.NewMediaBlock(kind, in.ExternalURL, in.Caption)},
	})
	if err != nil {
		logger.Error("upload failed", "branch", "external", "err", err)

		return entity.UploadResult{}, upstreamFailure(err, "Failed to upload to Notion")
	}

	publishEvent(ctx, u.publisher, entity.EventCreated, pageID)

	return entity.UploadResult{PageID: pageID}, nil
}

// uploadFile records the file as descriptive text blocks plus an advisory
// callout. The payload itself is never embedded as a media block.
func (u *Uploader) uploadFile(ctx context.Context, in entity.UploadInput) (entity.UploadResult, error) {
	file := in.File
	if file.Size > u.embedLimit {
		return entity.UploadResult{}, entity.BadRequest(entity.CodeFileTooLarge, fileTooLargeMessage)
	}

	data, err := io.ReadAll(io.LimitReader(file.Content, u.embedLimit+1))
	if err != nil {
		return entity.UploadResult{}, &entity.Failure{
			Status:  http.StatusBadRequest,
			Message: "failed to read uploaded file",
			Err:     err,
		}
	}
	if int64(len(data)) > u.embedLimit {
		return entity.UploadResult{}, entity.BadRequest(entity.CodeFileTooLarge, fileTooLargeMessage)
	}

	contentType := file.ContentType
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = mimetype.Detect(data).String()
	}

	caption := in.Caption
	if caption == "" {
		caption = noCaption
	}

	blocks := []model.Block{
		model.NewParagraphBlock(fmt.Sprintf("File: %s (%.2f KB)", file.Name, float64(len(data))/1024)),
		model.NewParagraphBlock(caption),
	}

	var archived *entity.ArchiveResult
	if u.minioUploader != nil {
		res, err := u.minioUploader.UploadFile(ctx, bytes.NewReader(data), int64(len(data)), file.Name, contentType)
		if err != nil {
			return entity.UploadResult{}, &entity.Failure{
				Status:  http.StatusInternalServerError,
				Message: "failed to archive uploaded file",
				Details: err.Error(),
				Err:     err,
			}
		}
		archived = &res
		blocks = append(blocks, model.NewParagraphBlock("Archived copy: "+res.Location))
	}

	blocks = append(blocks, model.NewCalloutBlock(fileAdvisory, fileAdvisoryEmoji))

	pageID, err := u.writer.CreatePage(ctx, model.PageDraft{Title: in.Title, Blocks: blocks})
	if err != nil {
		if archived != nil && u.minioRemover != nil {
			if rmErr := u.minioRemover.Remove(ctx, archived.Bucket, archived.Key); rmErr != nil {
				logger.Error("failed to remove archived file after page creation failed", "err", rmErr)
			}
		}
		logger.Error("upload failed", "branch", "file", "file", file.Name, "type", contentType, "err", err)

		return entity.UploadResult{}, upstreamFailure(err, "Failed to upload to Notion")
	}

	publishEvent(ctx, u.publisher, entity.EventCreated, pageID)

	result := entity.UploadResult{PageID: pageID, Message: fileCreatedMessage}
	if archived != nil {
		result.ArchiveLocation = archived.Location
	}

	return result, nil
}
