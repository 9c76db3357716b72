package domain

import (
	"time"

	leasedomain "rentdesk-backend/internal/lease/domain"
	propertydomain "rentdesk-backend/internal/property/domain"
	tenantdomain "rentdesk-backend/internal/tenant/domain"
)

// Document is an uploaded file attached to a tenant, lease or property
type Document struct {
	ID           string                   `json:"id" gorm:"primaryKey"`
	LeaseID      *string                  `json:"lease_id" gorm:"index"`
	Lease        *leasedomain.Lease       `json:"-" gorm:"foreignKey:LeaseID"`
	TenantID     *string                  `json:"tenant_id" gorm:"index"`
	Tenant       *tenantdomain.Tenant     `json:"-" gorm:"foreignKey:TenantID"`
	PropertyID   *string                  `json:"property_id" gorm:"index"`
	Property     *propertydomain.Property `json:"-" gorm:"foreignKey:PropertyID"`
	DocumentType string                   `json:"document_type" gorm:"not null"`
	DocumentName string                   `json:"document_name" gorm:"not null"`
	StorageKey   string                   `json:"file_path" gorm:"column:file_path;not null"`
	FileSize     int64                    `json:"file_size"`
	FileType     string                   `json:"file_type"`
	UploadDate   time.Time                `json:"upload_date" gorm:"index"`
	UploadedBy   string                   `json:"uploaded_by"`
	Description  string                   `json:"description"`
}
