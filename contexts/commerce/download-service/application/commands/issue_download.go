package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"classbay/contexts/commerce/download-service/application"
	"classbay/contexts/commerce/download-service/domain/entities"
	domainerrors "classbay/contexts/commerce/download-service/domain/errors"
	"classbay/contexts/commerce/download-service/domain/services"
	"classbay/contexts/commerce/download-service/ports"
)

// LegalNotice accompanies every owner-issued download.
const LegalNotice = "This download is licensed to the purchaser for personal use only. Redistribution is prohibited."

const historyTimeout = 5 * time.Second

// IssueDownloadCommand asks for a signed URL for one file of an owned order.
type IssueDownloadCommand struct {
	OrderID string
	FileID  string
	OwnerID string
}

type IssueDownloadResult struct {
	DownloadURL      string
	Filename         string
	Size             int64
	ExpiresInSeconds int
	RemainingDays    int
	LegalNotice      string
}

type IssueDownloadUseCase struct {
	Orders  ports.OrderReader
	Catalog ports.Catalog
	Store   ports.ObjectStore
	History ports.History
	Clock   ports.Clock
	TTL     time.Duration
	Logger  *slog.Logger
}

// Execute walks the full entitlement chain: owned order, paid and inside the
// window, file present in a purchased product's manifest. Only then is the
// object store asked to sign.
func (u IssueDownloadUseCase) Execute(ctx context.Context, cmd IssueDownloadCommand) (IssueDownloadResult, error) {
	if strings.TrimSpace(cmd.OrderID) == "" || strings.TrimSpace(cmd.FileID) == "" {
		return IssueDownloadResult{}, domainerrors.ErrOrderNotFound
	}

	logger := application.ResolveLogger(u.Logger)

	order, err := u.Orders.GetOrder(ctx, cmd.OrderID, cmd.OwnerID)
	if err != nil {
		return IssueDownloadResult{}, err
	}

	entitlement, err := services.EvaluateEntitlement(order, u.Clock.Now())
	if err != nil {
		logger.Warn("download denied",
			"event", "download_denied",
			"module", "commerce/download-service",
			"layer", "application",
			"order_id", order.ID,
			"file_id", cmd.FileID,
			"reason", err.Error(),
		)
		return IssueDownloadResult{}, err
	}

	// File ids are only unique within a manifest: scan the order's items in
	// order and take the first manifest entry that matches.
	file, err := u.resolveEntitledFile(ctx, order, cmd.FileID)
	if err != nil {
		return IssueDownloadResult{}, err
	}

	url, err := u.Store.SignURL(ctx, file.StoragePath, u.TTL)
	if err != nil {
		return IssueDownloadResult{}, err
	}

	recordHistory(u.History, u.Clock.Now(), u.Logger, entities.DownloadRecord{
		UserID:   cmd.OwnerID,
		OrderID:  order.ID,
		FileID:   file.ID,
		Filename: file.Filename,
	})

	logger.Info("download issued",
		"event", "download_issued",
		"module", "commerce/download-service",
		"layer", "application",
		"order_id", order.ID,
		"file_id", file.ID,
		"remaining_days", entitlement.RemainingDays,
	)
	return IssueDownloadResult{
		DownloadURL:      url,
		Filename:         file.Filename,
		Size:             file.Size,
		ExpiresInSeconds: int(u.TTL.Seconds()),
		RemainingDays:    entitlement.RemainingDays,
		LegalNotice:      LegalNotice,
	}, nil
}

func (u IssueDownloadUseCase) resolveEntitledFile(
	ctx context.Context,
	order entities.PurchasedOrder,
	fileID string,
) (entities.FileDescriptor, error) {
	for _, item := range order.Items {
		manifest, err := u.Catalog.GetManifest(ctx, item.ProductID)
		if err != nil {
			return entities.FileDescriptor{}, err
		}
		if file, ok := services.ResolveFile(manifest, fileID); ok {
			return file, nil
		}
	}
	return entities.FileDescriptor{}, domainerrors.ErrFileNotEntitled
}

// recordHistory appends the audit record off the request path. The download
// response never waits on it and never sees its failures.
func recordHistory(history ports.History, now time.Time, logger *slog.Logger, record entities.DownloadRecord) {
	log := application.ResolveLogger(logger)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), historyTimeout)
		defer cancel()

		record.DownloadedAt = now
		if err := history.RecordDownload(ctx, record); err != nil {
			log.Warn("download history write failed",
				"event", "download_history_failed",
				"module", "commerce/download-service",
				"layer", "application",
				"order_id", record.OrderID,
				"file_id", record.FileID,
				"error", err.Error(),
			)
		}
	}()
}
