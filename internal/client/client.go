// Package client типизированный HTTP-клиент API клиники.
// Ответы сервиса декодируются через таблицы алиасов нормализатора,
// поэтому клиент одинаково понимает PascalCase- и camelCase-поля
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
	"github.com/m04kA/SMC-ClinicService/internal/normalize"
)

// Client клиент для работы с API клиники
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Health проверяет доступность сервиса и его базы данных
func (c *Client) Health(ctx context.Context) error {
	raw, err := c.getJSON(ctx, "/api/health")
	if err != nil {
		return err
	}

	var resp struct {
		OK    bool   `json:"ok"`
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return fmt.Errorf("%w: failed to decode health response: %v", ErrInvalidResponse, err)
	}
	if !resp.OK {
		return fmt.Errorf("%w: %s", ErrAPI, resp.Error)
	}
	return nil
}

// Doctors возвращает справочник врачей
func (c *Client) Doctors(ctx context.Context) ([]domain.Doctor, error) {
	rows, err := c.getRows(ctx, "/api/doctors")
	if err != nil {
		return nil, err
	}
	out := make([]domain.Doctor, 0, len(rows))
	for _, row := range rows {
		out = append(out, normalize.Doctor(row))
	}
	return out, nil
}

// Services возвращает справочник услуг
func (c *Client) Services(ctx context.Context) ([]domain.Service, error) {
	rows, err := c.getRows(ctx, "/api/services")
	if err != nil {
		return nil, err
	}
	out := make([]domain.Service, 0, len(rows))
	for _, row := range rows {
		out = append(out, normalize.Service(row))
	}
	return out, nil
}

// Cabinets возвращает справочник кабинетов
func (c *Client) Cabinets(ctx context.Context) ([]domain.Cabinet, error) {
	rows, err := c.getRows(ctx, "/api/cabinets")
	if err != nil {
		return nil, err
	}
	out := make([]domain.Cabinet, 0, len(rows))
	for _, row := range rows {
		out = append(out, normalize.Cabinet(row))
	}
	return out, nil
}

// Patients возвращает справочник пациентов
func (c *Client) Patients(ctx context.Context) ([]domain.Patient, error) {
	rows, err := c.getRows(ctx, "/api/patients")
	if err != nil {
		return nil, err
	}
	out := make([]domain.Patient, 0, len(rows))
	for _, row := range rows {
		out = append(out, normalize.Patient(row))
	}
	return out, nil
}

// Appointments возвращает журнал записей на прием
func (c *Client) Appointments(ctx context.Context) ([]domain.Appointment, error) {
	rows, err := c.getRows(ctx, "/api/appointments")
	if err != nil {
		return nil, err
	}
	out := make([]domain.Appointment, 0, len(rows))
	for _, row := range rows {
		out = append(out, normalize.Appointment(row))
	}
	return out, nil
}

// CreateAppointment создает запись на прием и возвращает ее идентификатор
func (c *Client) CreateAppointment(ctx context.Context, req *domain.AppointmentCreate) (int64, error) {
	body := map[string]interface{}{
		"PatientId":       req.PatientID,
		"DoctorId":        req.DoctorID,
		"ServiceId":       req.ServiceID,
		"CabinetId":       req.CabinetID,
		"StartAt":         req.StartAt.UTC().Format(time.RFC3339),
		"DurationMinutes": req.DurationMinutes,
		"Status":          string(req.Status),
	}

	raw, err := c.doJSON(ctx, http.MethodPost, "/api/appointments", body)
	if err != nil {
		return 0, err
	}

	var obj map[string]interface{}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return 0, fmt.Errorf("%w: failed to decode create response: %v", ErrInvalidResponse, err)
	}

	v, ok := normalize.Pick(obj, []string{"NewAppointmentId", "newAppointmentId", "AppointmentId", "appointmentId"})
	if !ok {
		return 0, fmt.Errorf("%w: create response has no appointment id", ErrInvalidResponse)
	}
	id, ok := normalize.AsInt64(v)
	if !ok || id <= 0 {
		return 0, fmt.Errorf("%w: create response has malformed appointment id", ErrInvalidResponse)
	}

	c.log.Info("Appointment created: appointment_id=%d", id)
	return id, nil
}

// UpdateAppointmentStatus переводит запись в указанный статус
func (c *Client) UpdateAppointmentStatus(ctx context.Context, id int64, status domain.AppointmentStatus) (*domain.AppointmentStatusUpdate, error) {
	path := fmt.Sprintf("/api/appointments/%d/status", id)
	body := map[string]interface{}{"Status": string(status)}

	raw, err := c.doJSON(ctx, http.MethodPatch, path, body)
	if err != nil {
		return nil, err
	}

	var obj map[string]interface{}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("%w: failed to decode status response: %v", ErrInvalidResponse, err)
	}

	upd := &domain.AppointmentStatusUpdate{AppointmentID: id, Status: status}
	if v, ok := normalize.Pick(obj, []string{"AppointmentId", "appointmentId"}); ok {
		if n, ok := normalize.AsInt64(v); ok {
			upd.AppointmentID = n
		}
	}
	if v, ok := normalize.Pick(obj, []string{"Status", "status"}); ok {
		upd.Status = domain.AppointmentStatus(normalize.AsString(v))
	}
	return upd, nil
}

// getRows выполняет GET и декодирует ответ как массив JSON-объектов
func (c *Client) getRows(ctx context.Context, path string) ([]map[string]interface{}, error) {
	raw, err := c.getJSON(ctx, path)
	if err != nil {
		return nil, err
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("%w: expected array at %s: %v", ErrInvalidResponse, path, err)
	}
	return rows, nil
}

func (c *Client) getJSON(ctx context.Context, path string) ([]byte, error) {
	return c.doJSON(ctx, http.MethodGet, path, nil)
}

// doJSON выполняет запрос и возвращает тело успешного ответа.
// Ответы с телом {"error": "..."} превращаются в ErrAPI с текстом сервера
func (c *Client) doJSON(ctx context.Context, method, path string, body interface{}) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrInvalidResponse, err)
	}

	if resp.StatusCode == http.StatusOK {
		return raw, nil
	}

	apiMsg := ""
	var errBody struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(raw, &errBody) == nil {
		apiMsg = errBody.Error
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrAppointmentNotFound, apiMsg)
	}
	if apiMsg != "" {
		return nil, fmt.Errorf("%w: %s", ErrAPI, apiMsg)
	}
	return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
}
