package database

import (
	"log"
)

// RunMigrations ejecuta las migraciones necesarias para actualizar el esquema de la base de datos
func RunMigrations() error {
	log.Println("Ejecutando migraciones de la base de datos...")

	// Migración para instalaciones anteriores sin los campos de automatización
	addAutomationColumnsSQL := `
	ALTER TABLE investments ADD COLUMN IF NOT EXISTS api_id TEXT;
	ALTER TABLE investments ADD COLUMN IF NOT EXISTS yield_rate DOUBLE PRECISION;
	ALTER TABLE investments ADD COLUMN IF NOT EXISTS is_automated BOOLEAN NOT NULL DEFAULT FALSE;
	ALTER TABLE investments ADD COLUMN IF NOT EXISTS quantity DOUBLE PRECISION;
	`

	if _, err := DB.Exec(addAutomationColumnsSQL); err != nil {
		log.Printf("Error al añadir columnas de automatización: %v", err)
		return err
	}

	// Migración para instalaciones anteriores sin perfil de usuario
	addPerfilColumnSQL := `
	ALTER TABLE users ADD COLUMN IF NOT EXISTS perfil TEXT NOT NULL DEFAULT 'user';
	`

	if _, err := DB.Exec(addPerfilColumnSQL); err != nil {
		log.Printf("Error al añadir columna perfil: %v", err)
		return err
	}

	return nil
}
