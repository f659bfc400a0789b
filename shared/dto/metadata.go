package dto

import (
	"spa/shared/constant"
	"spa/shared/model"
)

// Metadata is the audit trail rendered on every response. Instants are UTC.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at"`
	CreatedBy  string `json:"created_by"`
	ModifiedBy string `json:"modified_by"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedAt = model.CreatedAt.UTC().Format(constant.DateFormat)
	m.ModifiedAt = model.ModifiedAt.UTC().Format(constant.DateFormat)
	m.CreatedBy = model.CreatedBy
	m.ModifiedBy = model.ModifiedBy
}
