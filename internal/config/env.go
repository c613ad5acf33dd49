package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr     string
	GinMode     string
	CORSOrigins string

	// Planilha
	SpreadsheetID      string
	ServiceAccountJSON string
	CredentialsFile    string
	NomesSheet         string
	BairrosSheet       string

	// Formatação
	Timezone string
	PhoneDDD string

	// Auth do operador (opcional; vazio = API aberta)
	AuthSecret       string
	OperatorUser     string
	OperatorPassHash string
}

func LoadEnv() Env {
	return Env{
		AppAddr:     getenv("APP_ADDR", ":8080"),
		GinMode:     getenv("GIN_MODE", ""),
		CORSOrigins: getenv("CORS_ALLOWED_ORIGINS", ""),

		SpreadsheetID:      getenv("SPREADSHEET_ID", ""),
		ServiceAccountJSON: getenv("GOOGLE_SERVICE_ACCOUNT_JSON", ""),
		CredentialsFile:    getenv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		NomesSheet:         getenv("NOMES_SHEET", "Nomes"),
		BairrosSheet:       getenv("BAIRROS_SHEET", "Bairro"),

		Timezone: getenv("APP_TZ", "America/Manaus"),
		PhoneDDD: getenv("PHONE_DDD", "92"),

		AuthSecret:       getenv("AUTH_SECRET", ""),
		OperatorUser:     getenv("AUTH_OPERATOR_USER", "operador"),
		OperatorPassHash: getenv("AUTH_OPERATOR_HASH", ""),
	}
}

func getenv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}
