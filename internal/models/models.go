package models

// All lists every persisted entity in dependency order, for schema migration.
func All() []any {
	return []any{
		&UserType{},
		&ResourceType{},
		&ZoneType{},
		&User{},
		&AidRequest{},
		&Rating{},
		&Location{},
		&Message{},
	}
}
