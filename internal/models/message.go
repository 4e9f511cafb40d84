package models

import "time"

// Message is a free-text note written by a user on an aid request.
type Message struct {
	ID           int       `json:"id" gorm:"primaryKey;autoIncrement;column:id_mensagem"`
	AidRequestID int       `json:"ajudaId" gorm:"column:id_ajuda;not null;index"`
	UserID       int       `json:"usuarioId" gorm:"column:id_usuario;not null;index"`
	Content      string    `json:"conteudo" gorm:"column:mensagem;type:varchar(500);not null"`
	SentAt       time.Time `json:"dataEnvio" gorm:"column:data_envio;not null"`

	AidRequest *AidRequest `json:"-" gorm:"foreignKey:AidRequestID;references:ID;constraint:OnDelete:CASCADE"`
	User       *User       `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Message) TableName() string {
	return "t_smp_mensagens_c"
}
