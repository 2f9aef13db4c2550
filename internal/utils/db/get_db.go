package db

import (
	"os"
	"strconv"

	"gorm.io/gorm"
)

// GetDB monta a ligação ao Postgres a partir do ambiente. DB_PORT ausente ou
// inválida cai no porto padrão do Postgres.
func GetDB() (*gorm.DB, error) {
	host := os.Getenv("DB_HOST")
	porta, err := strconv.ParseUint(os.Getenv("DB_PORT"), 10, 32)
	if err != nil {
		porta = 5432
	}
	return ConnectDataBase(uint(porta), host, os.Getenv("DB_NAME"), os.Getenv("DB_SECRET_ID"))
}
