package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BranchModel merepresentasikan tabel `branches`
type BranchModel struct {
	BranchID uuid.UUID `json:"branch_id" gorm:"column:branch_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Identitas
	BranchName    string  `json:"branch_name" gorm:"column:branch_name;type:varchar(120);not null"`
	BranchCode    string  `json:"branch_code" gorm:"column:branch_code;type:varchar(20);not null;uniqueIndex"`
	BranchAddress *string `json:"branch_address,omitempty" gorm:"column:branch_address;type:text"`
	BranchPhone   *string `json:"branch_phone,omitempty" gorm:"column:branch_phone;type:varchar(30)"`

	BranchIsActive bool `json:"branch_is_active" gorm:"column:branch_is_active;not null;default:true"`

	BranchCreatedAt time.Time      `json:"branch_created_at" gorm:"column:branch_created_at;type:timestamptz;not null;default:now()"`
	BranchUpdatedAt time.Time      `json:"branch_updated_at" gorm:"column:branch_updated_at;type:timestamptz;not null;default:now()"`
	DeletedAt       gorm.DeletedAt `json:"branch_deleted_at,omitempty" gorm:"column:branch_deleted_at;type:timestamptz;index"`
}

func (BranchModel) TableName() string {
	return "branches"
}
