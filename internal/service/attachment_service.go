package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ai-catalog-be/internal/apperror"
	"ai-catalog-be/internal/dto"
	"ai-catalog-be/internal/entity"
	"ai-catalog-be/internal/pkg/logger"
	"ai-catalog-be/internal/repository/contract"
	"ai-catalog-be/pkg/fileutil"
	"ai-catalog-be/pkg/slug"
)

type IAttachmentService interface {
	Upload(ctx context.Context, productId string, file *multipart.FileHeader) (*dto.AttachmentResponse, error)
	ListByProduct(ctx context.Context, productId string) ([]*dto.AttachmentResponse, error)
	GetById(ctx context.Context, id string) (*dto.AttachmentResponse, error)
	Download(ctx context.Context, id string) (*dto.AttachmentResponse, string, error)
	Delete(ctx context.Context, id string) error
}

type attachmentService struct {
	attachmentRepo   contract.AttachmentRepository
	productRepo      contract.ProductRepository
	publisherService IPublisherService
	uploadDir        string
	log              logger.ILogger
}

func NewAttachmentService(
	attachmentRepo contract.AttachmentRepository,
	productRepo contract.ProductRepository,
	publisherService IPublisherService,
	uploadDir string,
	log logger.ILogger,
) IAttachmentService {
	return &attachmentService{
		attachmentRepo:   attachmentRepo,
		productRepo:      productRepo,
		publisherService: publisherService,
		uploadDir:        uploadDir,
		log:              log,
	}
}

// Upload stores a PDF or Markdown file on disk and records the attachment.
// Markdown text is captured into the record so the frontend can render it
// inline without a second request.
func (s *attachmentService) Upload(ctx context.Context, productId string, file *multipart.FileHeader) (*dto.AttachmentResponse, error) {
	product, err := s.productRepo.FindById(ctx, productId)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NotFound("product not found")
	}

	mimeType := file.Header.Get("Content-Type")
	if !fileutil.IsAllowedUpload(mimeType, file.Filename) {
		return nil, apperror.Validation("only PDF and Markdown files are allowed")
	}

	ext := filepath.Ext(file.Filename)
	base := slug.Make(strings.TrimSuffix(file.Filename, ext))
	if base == "" {
		base = "file"
	}
	storedName := fmt.Sprintf("%s-%d%s", base, time.Now().UnixMilli(), ext)
	destPath := filepath.Join(s.uploadDir, storedName)
	if err := s.saveFile(file, destPath); err != nil {
		return nil, err
	}

	attachment := &entity.Attachment{
		ProductId:    product.Id,
		Filename:     storedName,
		OriginalName: file.Filename,
		MimeType:     mimeType,
		FileType:     fileutil.DetectFileType(mimeType),
		Size:         file.Size,
		Url:          "/uploads/" + storedName,
	}

	if fileutil.IsMarkdown(mimeType, file.Filename) {
		data, err := os.ReadFile(destPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read markdown upload: %w", err)
		}
		content := string(data)
		attachment.Content = &content
	}

	if err := s.attachmentRepo.Create(ctx, attachment); err != nil {
		return nil, err
	}
	s.log.Info("attachment", "stored upload", map[string]interface{}{
		"product_id": product.Id,
		"filename":   storedName,
		"size":       fileutil.FormatSize(file.Size),
	})
	return toAttachmentResponse(attachment), nil
}

func (s *attachmentService) saveFile(file *multipart.FileHeader, destPath string) error {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return fmt.Errorf("failed to create upload dir: %w", err)
	}
	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

func (s *attachmentService) ListByProduct(ctx context.Context, productId string) ([]*dto.AttachmentResponse, error) {
	attachments, err := s.attachmentRepo.FindByProductId(ctx, productId)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AttachmentResponse, 0, len(attachments))
	for _, a := range attachments {
		out = append(out, toAttachmentResponse(a))
	}
	return out, nil
}

func (s *attachmentService) GetById(ctx context.Context, id string) (*dto.AttachmentResponse, error) {
	attachment, err := s.attachmentRepo.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if attachment == nil {
		return nil, apperror.NotFound("attachment not found")
	}
	return toAttachmentResponse(attachment), nil
}

// Download resolves an attachment and publishes a download event; the
// counter is bumped asynchronously by the consumer. It returns the response
// plus the on-disk path for the transport layer to serve.
func (s *attachmentService) Download(ctx context.Context, id string) (*dto.AttachmentResponse, string, error) {
	attachment, err := s.attachmentRepo.FindById(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if attachment == nil {
		return nil, "", apperror.NotFound("attachment not found")
	}

	payload, err := json.Marshal(dto.ProductDownloadedMessage{
		ProductId:    attachment.ProductId,
		AttachmentId: attachment.Id,
	})
	if err != nil {
		return nil, "", err
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		// The download itself must not fail because counting did.
		s.log.Warn("attachment", "failed to publish download event", map[string]interface{}{
			"attachment_id": attachment.Id,
			"error":         err.Error(),
		})
	}

	return toAttachmentResponse(attachment), filepath.Join(s.uploadDir, attachment.Filename), nil
}

// Delete removes the record; the file removal is best effort and deleting
// an already deleted attachment is a no-op.
func (s *attachmentService) Delete(ctx context.Context, id string) error {
	attachment, err := s.attachmentRepo.FindById(ctx, id)
	if err != nil {
		return err
	}
	if attachment == nil {
		return nil
	}

	if err := os.Remove(filepath.Join(s.uploadDir, attachment.Filename)); err != nil && !os.IsNotExist(err) {
		s.log.Warn("attachment", "failed to remove file", map[string]interface{}{
			"filename": attachment.Filename,
			"error":    err.Error(),
		})
	}
	return s.attachmentRepo.Delete(ctx, id)
}

func toAttachmentResponse(a *entity.Attachment) *dto.AttachmentResponse {
	return &dto.AttachmentResponse{
		Id:           a.Id,
		ProductId:    a.ProductId,
		Filename:     a.Filename,
		OriginalName: a.OriginalName,
		MimeType:     a.MimeType,
		FileType:     a.FileType,
		Size:         a.Size,
		Url:          a.Url,
		Content:      a.Content,
		UploadedAt:   a.UploadedAt,
	}
}
