package entity

// Models returns every persisted entity, in dependency order, for schema migration.
func Models() []interface{} {
	return []interface{}{
		&Patient{},
		&Doctor{},
		&ConsultationType{},
		&Appointment{},
		&HistoryEntry{},
		&Reminder{},
		&AuditLog{},
	}
}
