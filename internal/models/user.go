package models

import "time"

// User represents a person registered on the platform.
type User struct {
	ID         int       `json:"id" gorm:"primaryKey;autoIncrement;column:id_usuario"`
	UserTypeID int       `json:"tipoUsuarioId" gorm:"column:id_tipo_usuario;not null;index"`
	Name       string    `json:"nome" gorm:"column:nome;type:varchar(100);not null"`
	Email      string    `json:"email" gorm:"column:email;type:varchar(100);not null;index"`
	Password   string    `json:"-" gorm:"column:senha;type:varchar(256);not null"`
	CreatedAt  time.Time `json:"dataCriacao" gorm:"column:data_criacao;not null"`

	UserType *UserType `json:"-" gorm:"foreignKey:UserTypeID;references:ID;constraint:OnDelete:CASCADE"`
}

func (User) TableName() string {
	return "t_smp_usuarios_c"
}
