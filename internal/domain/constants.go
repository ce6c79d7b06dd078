package domain

// Значения по умолчанию для создания записи
const (
	DefaultDurationMinutes = 30
	DefaultStatus          = StatusNew
)

// AppointmentsListLimit максимум строк в выдаче списка записей
const AppointmentsListLimit = 200

// Форматы даты и времени
const (
	DateFormat      = "2006-01-02"       // YYYY-MM-DD
	LocalTimeFormat = "2006-01-02 15:04" // naive datetime в консоли оператора
)

// KnownStatuses закрытый набор статусов записи в порядке рабочего процесса
// Неизвестные значения из БД не отбрасываются, но не предлагаются к выбору
var KnownStatuses = []AppointmentStatus{
	StatusNew,
	StatusNeedInfo,
	StatusPriceSent,
	StatusConfirmed,
	StatusPaymentReported,
	StatusInProgress,
	StatusReady,
	StatusDone,
	StatusCanceled,
}
