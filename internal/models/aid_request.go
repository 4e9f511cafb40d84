package models

import "time"

// AidRequest is a request for help posted by a user for a given resource type.
// Status is a free single character code; no enumeration is enforced.
type AidRequest struct {
	ID             int       `json:"id" gorm:"primaryKey;autoIncrement;column:id_ajuda"`
	UserID         int       `json:"usuarioId" gorm:"column:id_usuario;not null;index"`
	ResourceTypeID int       `json:"tipoRecursoId" gorm:"column:id_recurso;not null;index"`
	Description    string    `json:"descricao" gorm:"column:descricao;type:varchar(256);not null"`
	Status         string    `json:"status" gorm:"column:status;type:char(1);not null"`
	PublishedAt    time.Time `json:"dataPublicacao" gorm:"column:data_publicacao;not null"`

	User         *User         `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	ResourceType *ResourceType `json:"-" gorm:"foreignKey:ResourceTypeID;references:ID;constraint:OnDelete:CASCADE"`
}

func (AidRequest) TableName() string {
	return "t_smp_ajudas_c"
}
