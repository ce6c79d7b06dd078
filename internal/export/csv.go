// Package export формирует CSV-выгрузку журнала записей на прием.
// Формат рассчитан на открытие в Excel: BOM, подсказка разделителя sep=;
// и CRLF-переводы строк.
package export

import (
	"bytes"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
)

const (
	utf8BOM   = "\xEF\xBB\xBF"
	separator = ";"
	lineEnd   = "\r\n"
)

// csvHeader фиксированный порядок колонок выгрузки
var csvHeader = []string{
	"appointmentId",
	"startAt",
	"endAt",
	"durationMinutes",
	"status",
	"patientId",
	"doctorId",
	"serviceId",
	"cabinetId",
}

// AppointmentsCSV собирает CSV-документ по списку записей.
// Первая строка — подсказка разделителя для Excel, вторая — заголовок
func AppointmentsCSV(appointments []domain.Appointment) []byte {
	var buf bytes.Buffer

	buf.WriteString(utf8BOM)
	buf.WriteString("sep=" + separator)
	buf.WriteString(lineEnd)
	buf.WriteString(strings.Join(csvHeader, separator))
	buf.WriteString(lineEnd)

	for _, a := range appointments {
		row := []string{
			strconv.FormatInt(a.ID, 10),
			formatTime(&a.StartAt),
			formatTime(a.EndAt),
			strconv.Itoa(a.DurationMinutes),
			string(a.Status),
			strconv.FormatInt(a.PatientID, 10),
			strconv.FormatInt(a.DoctorID, 10),
			strconv.FormatInt(a.ServiceID, 10),
			strconv.FormatInt(a.CabinetID, 10),
		}
		for i, field := range row {
			row[i] = escapeField(field)
		}
		buf.WriteString(strings.Join(row, separator))
		buf.WriteString(lineEnd)
	}

	return buf.Bytes()
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// escapeField заключает значение в кавычки, если оно содержит разделитель,
// кавычку, запятую или перевод строки; кавычки внутри удваиваются
func escapeField(s string) string {
	if !strings.ContainsAny(s, ";\",\n\r") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
