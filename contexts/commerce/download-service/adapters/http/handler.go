package httpadapter

import (
	"context"
	"log/slog"

	"classbay/contexts/commerce/download-service/application/commands"
	httptransport "classbay/contexts/commerce/download-service/transport/http"
)

type Handler struct {
	IssueDownload      commands.IssueDownloadUseCase
	AdminIssueDownload commands.AdminIssueDownloadUseCase
	Logger             *slog.Logger
}

// IssueDownloadHandler godoc
// @Summary Download a purchased file
// @Description Issues a time-limited signed URL for a file of an owned, paid
// @Description order inside its entitlement window.
// @Tags downloads
// @Produce json
// @Security BearerAuth
// @Param order_id path string true "Order id"
// @Param file_id path string true "File id within the order's products"
// @Success 200 {object} httptransport.DownloadResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /downloads/{order_id}/{file_id} [get]
func (h Handler) IssueDownloadHandler(
	ctx context.Context,
	ownerID string,
	orderID string,
	fileID string,
) (httptransport.DownloadResponse, error) {
	result, err := h.IssueDownload.Execute(ctx, commands.IssueDownloadCommand{
		OrderID: orderID,
		FileID:  fileID,
		OwnerID: ownerID,
	})
	if err != nil {
		return httptransport.DownloadResponse{}, err
	}
	return httptransport.DownloadResponse{
		DownloadURL:      result.DownloadURL,
		Filename:         result.Filename,
		Size:             result.Size,
		ExpiresInSeconds: result.ExpiresInSeconds,
		RemainingDays:    result.RemainingDays,
		LegalNotice:      result.LegalNotice,
	}, nil
}

// AdminIssueDownloadHandler godoc
// @Summary Download any catalog file (admin)
// @Description Resolves a file across every product and issues a signed URL,
// @Description bypassing ownership and entitlement expiry. Admin only.
// @Tags downloads
// @Produce json
// @Security BearerAuth
// @Param file_id path string true "Catalog file id"
// @Success 200 {object} httptransport.AdminDownloadResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /admin/downloads/{file_id} [get]
func (h Handler) AdminIssueDownloadHandler(
	ctx context.Context,
	adminID string,
	fileID string,
) (httptransport.AdminDownloadResponse, error) {
	result, err := h.AdminIssueDownload.Execute(ctx, commands.AdminIssueDownloadCommand{
		FileID:  fileID,
		AdminID: adminID,
	})
	if err != nil {
		return httptransport.AdminDownloadResponse{}, err
	}
	return httptransport.AdminDownloadResponse{
		DownloadURL:      result.DownloadURL,
		Filename:         result.Filename,
		Size:             result.Size,
		ExpiresInSeconds: result.ExpiresInSeconds,
		ProductTitle:     result.ProductTitle,
	}, nil
}
