package models

// Location pins an aid request to a coordinate inside a zone.
// One location per aid request is the usual case but it is not enforced.
type Location struct {
	ID           int     `json:"id" gorm:"primaryKey;autoIncrement;column:id_localizacao"`
	AidRequestID int     `json:"ajudaId" gorm:"column:id_ajuda;not null;index"`
	ZoneTypeID   int     `json:"zonaId" gorm:"column:id_zona;not null;index"`
	Latitude     float64 `json:"latitude" gorm:"column:latitude;type:decimal(12,8);not null"`
	Longitude    float64 `json:"longitude" gorm:"column:longitude;type:decimal(12,8);not null"`

	AidRequest *AidRequest `json:"-" gorm:"foreignKey:AidRequestID;references:ID;constraint:OnDelete:CASCADE"`
	ZoneType   *ZoneType   `json:"-" gorm:"foreignKey:ZoneTypeID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Location) TableName() string {
	return "t_smp_localizacoes_c"
}
