package models

// UserType classifies users (volunteer, requester, organisation, ...).
type UserType struct {
	ID   int    `json:"id" gorm:"primaryKey;autoIncrement;column:id_tipo_usuario"`
	Name string `json:"nomeTipo" gorm:"column:nome_tipo;type:varchar(50);not null"`
}

func (UserType) TableName() string {
	return "t_smp_tipo_usuarios_c"
}

// ResourceType is a kind of aid that can be requested (water, food, shelter, ...).
type ResourceType struct {
	ID   int    `json:"id" gorm:"primaryKey;autoIncrement;column:id_recurso"`
	Name string `json:"recurso" gorm:"column:recurso;type:varchar(50);not null"`
}

func (ResourceType) TableName() string {
	return "t_smp_tipo_recursos_c"
}

// ZoneType is a geographic or administrative zone classification.
type ZoneType struct {
	ID   int    `json:"id" gorm:"primaryKey;autoIncrement;column:id_zona"`
	Name string `json:"zona" gorm:"column:zona;type:varchar(30);not null"`
}

func (ZoneType) TableName() string {
	return "t_smp_tipo_zonas_c"
}
