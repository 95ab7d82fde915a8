package minio

import (
	"context"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/minio/minio-go/v7"
)

type Remover struct {
	minioClient *minio.Client
	cfg         *RemoverConfig
}

func NewRemover(minioClient *minio.Client, cfg *RemoverConfig) *Remover {
	return &Remover{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

func (r *Remover) Remove(ctx context.Context, bucketName, objectName string) error {
	ctx, cancel := context.WithTimeout(ctx, timeout(r.cfg.Timeout))
	defer cancel()

	err := r.minioClient.RemoveObject(ctx, bucketName, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		logger.Error("failed to remove object", "bucket", bucketName, "object", objectName, "err", err)

		return err
	}

	return nil
}
