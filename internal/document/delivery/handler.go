package delivery

import (
	"fmt"
	"io"
	"net/http"

	"rentdesk-backend/internal/document/domain"
	"rentdesk-backend/internal/document/usecase"
	"rentdesk-backend/pkg/httputil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const uploadField = "document"

// DocumentHandler handles document upload and retrieval
type DocumentHandler struct {
	documentUsecase usecase.DocumentUsecase
	log             *zap.Logger
}

// NewDocumentHandler creates a new DocumentHandler
func NewDocumentHandler(documentUsecase usecase.DocumentUsecase, log *zap.Logger) *DocumentHandler {
	return &DocumentHandler{documentUsecase: documentUsecase, log: log}
}

// ListDocuments returns all document metadata
// GET /api/documents
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	docs, err := h.documentUsecase.ListDocuments(c.Request.Context())
	if err != nil {
		httputil.WriteError(c, h.log, err)
		return
	}
	if docs == nil {
		docs = []*domain.Document{}
	}
	c.JSON(http.StatusOK, docs)
}

// ListTenantDocuments returns the documents attached to a tenant
// GET /api/documents/tenant/:tenant_id
func (h *DocumentHandler) ListTenantDocuments(c *gin.Context) {
	docs, err := h.documentUsecase.ListTenantDocuments(c.Request.Context(), c.Param("tenant_id"))
	if err != nil {
		httputil.WriteError(c, h.log, err)
		return
	}
	if docs == nil {
		docs = []*domain.Document{}
	}
	c.JSON(http.StatusOK, docs)
}

// UploadDocument stores a multipart file under the "document" field
// POST /api/documents
func (h *DocumentHandler) UploadDocument(c *gin.Context) {
	header, err := c.FormFile(uploadField)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	file, err := header.Open()
	if err != nil {
		httputil.WriteError(c, h.log, err)
		return
	}
	defer file.Close()

	doc, err := h.documentUsecase.Upload(c.Request.Context(), usecase.UploadInput{
		TenantID:     c.PostForm("tenant_id"),
		LeaseID:      c.PostForm("lease_id"),
		PropertyID:   c.PostForm("property_id"),
		DocumentType: c.PostForm("document_type"),
		Description:  c.PostForm("description"),
		UploadedBy:   c.PostForm("uploaded_by"),
		FileName:     header.Filename,
		FileSize:     header.Size,
		ContentType:  header.Header.Get("Content-Type"),
		Body:         file,
	})
	if err != nil {
		httputil.WriteError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"document_id": doc.ID,
		"document":    doc,
		"message":     "Document uploaded successfully",
	})
}

// DownloadDocument streams the stored file
// GET /api/documents/:id/download
func (h *DocumentHandler) DownloadDocument(c *gin.Context) {
	doc, body, err := h.documentUsecase.Open(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.WriteError(c, h.log, err)
		return
	}
	defer body.Close()

	contentType := doc.FileType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, doc.DocumentName))
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, body); err != nil {
		h.log.Warn("document download interrupted", zap.String("document_id", doc.ID), zap.Error(err))
	}
}

// DeleteDocument removes a document and its file
// DELETE /api/documents/:id
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	if err := h.documentUsecase.DeleteDocument(c.Request.Context(), c.Param("id")); err != nil {
		httputil.WriteError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document deleted successfully"})
}
