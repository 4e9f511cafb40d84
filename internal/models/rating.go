package models

import "time"

// Rating is the score and comment a user leaves on an aid request.
type Rating struct {
	ID           int       `json:"id" gorm:"primaryKey;autoIncrement;column:id_avaliacao"`
	UserID       int       `json:"usuarioId" gorm:"column:id_usuario;not null;index"`
	AidRequestID int       `json:"ajudaId" gorm:"column:id_ajuda;not null;index"`
	Score        int       `json:"nota" gorm:"column:nota;not null"`
	Comment      string    `json:"comentario" gorm:"column:comentario;type:varchar(150)"`
	RatedAt      time.Time `json:"dataAvaliacao" gorm:"column:data_avaliacao;not null"`

	User       *User       `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	AidRequest *AidRequest `json:"-" gorm:"foreignKey:AidRequestID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Rating) TableName() string {
	return "t_smp_avaliacoes_c"
}
