package utils

import (
	"time"
)

// LayoutRegistro is the timestamp format written to the spreadsheet and
// printed on tickets.
const LayoutRegistro = "02/01/2006 15:04:05"

// NowRegistro formats the current time in the given IANA zone,
// falling back to server-local time when the zone cannot be loaded.
func NowRegistro(tzName string) string {
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		loc = time.Local
	}
	return time.Now().In(loc).Format(LayoutRegistro)
}
