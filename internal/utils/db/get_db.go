package db

import (
	"os"
	"strconv"

	"gorm.io/gorm"
)

// GetDB monta a conexão a partir das variáveis de ambiente
// (DB_HOST, DB_PORT, DB_NAME, DB_SECRET_ID).
func GetDB() (*gorm.DB, error) {
	dbHost := os.Getenv("DB_HOST")
	dbName := os.Getenv("DB_NAME")
	secretID := os.Getenv("DB_SECRET_ID")

	port, err := strconv.ParseUint(os.Getenv("DB_PORT"), 10, 32)
	if err != nil {
		port = 5432
	}

	return ConnectDataBase(uint(port), dbHost, dbName, secretID)
}
