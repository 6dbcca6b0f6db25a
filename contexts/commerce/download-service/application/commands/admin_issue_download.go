package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"classbay/contexts/commerce/download-service/application"
	"classbay/contexts/commerce/download-service/domain/entities"
	domainerrors "classbay/contexts/commerce/download-service/domain/errors"
	"classbay/contexts/commerce/download-service/ports"
)

// AdminIssueDownloadCommand resolves a file across the whole catalog for a
// verified administrator, bypassing ownership and the entitlement window.
type AdminIssueDownloadCommand struct {
	FileID  string
	AdminID string
}

type AdminIssueDownloadResult struct {
	DownloadURL      string
	Filename         string
	Size             int64
	ExpiresInSeconds int
	ProductTitle     string
}

type AdminIssueDownloadUseCase struct {
	Catalog ports.Catalog
	Store   ports.ObjectStore
	History ports.History
	Clock   ports.Clock
	TTL     time.Duration
	Logger  *slog.Logger
}

func (u AdminIssueDownloadUseCase) Execute(
	ctx context.Context,
	cmd AdminIssueDownloadCommand,
) (AdminIssueDownloadResult, error) {
	if strings.TrimSpace(cmd.FileID) == "" {
		return AdminIssueDownloadResult{}, domainerrors.ErrFileNotFound
	}

	logger := application.ResolveLogger(u.Logger)

	found, err := u.Catalog.FindFile(ctx, cmd.FileID)
	if err != nil {
		return AdminIssueDownloadResult{}, err
	}

	url, err := u.Store.SignURL(ctx, found.File.StoragePath, u.TTL)
	if err != nil {
		return AdminIssueDownloadResult{}, err
	}

	recordHistory(u.History, u.Clock.Now(), u.Logger, entities.DownloadRecord{
		UserID:   cmd.AdminID,
		FileID:   found.File.ID,
		Filename: found.File.Filename,
	})

	logger.Info("admin download issued",
		"event", "admin_download_issued",
		"module", "commerce/download-service",
		"layer", "application",
		"admin_id", cmd.AdminID,
		"file_id", found.File.ID,
		"product_title", found.ProductTitle,
	)
	return AdminIssueDownloadResult{
		DownloadURL:      url,
		Filename:         found.File.Filename,
		Size:             found.File.Size,
		ExpiresInSeconds: int(u.TTL.Seconds()),
		ProductTitle:     found.ProductTitle,
	}, nil
}
