// clinicctl консоль оператора: просмотр журнала, создание записей,
// смена статусов и выгрузка CSV через HTTP API сервиса
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/m04kA/SMC-ClinicService/internal/client"
	"github.com/m04kA/SMC-ClinicService/internal/domain"
	"github.com/m04kA/SMC-ClinicService/internal/export"
	"github.com/m04kA/SMC-ClinicService/pkg/logger"
)

const defaultTimeout = 15 * time.Second

func main() {
	var (
		apiURL   = flag.String("api", envOr("CLINIC_API_URL", "http://localhost:8080"), "адрес API сервиса")
		logLevel = flag.String("log-level", "warn", "уровень логирования")
	)
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	log, err := logger.New("", *logLevel)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	api := client.NewClient(*apiURL, defaultTimeout, log)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cmd, args := flag.Arg(0), flag.Args()[1:]

	switch cmd {
	case "list":
		err = runList(ctx, api)
	case "create":
		err = runCreate(ctx, api, args)
	case "set-status":
		err = runSetStatus(ctx, api, args)
	case "export":
		err = runExport(ctx, api, args)
	case "health":
		err = api.Health(ctx)
		if err == nil {
			fmt.Println("ok")
		}
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "clinicctl %s: %v\n", cmd, err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: clinicctl [-api URL] <command>

Commands:
  list                          журнал записей на прием
  create [-patient N] [-doctor N] [-service N] [-cabinet N]
         [-start "YYYY-MM-DD HH:MM"] [-duration MIN] [-status S]
                                создать запись (непереданные справочники
                                берутся первыми из списков)
  set-status <id=STATUS> ...    сменить статусы, можно несколько за раз
  export [-o FILE]              выгрузить журнал в CSV
  health                        проверить доступность сервиса`)
}

// runList печатает журнал записей таблицей
// Неизвестные статусы выводятся как есть
func runList(ctx context.Context, api *client.Client) error {
	rows, err := api.Appointments(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTART\tDURATION\tSTATUS\tPATIENT\tDOCTOR\tSERVICE\tCABINET")
	for _, a := range rows {
		fmt.Fprintf(w, "%d\t%s\t%d min\t%s\t%s\t%s\t%s\t%s\n",
			a.ID,
			a.StartAt.UTC().Format("2006-01-02 15:04"),
			a.DurationMinutes,
			a.Status,
			optID(a.PatientDisplayName, a.PatientID),
			optID(a.DoctorFullName, a.DoctorID),
			optID(a.ServiceName, a.ServiceID),
			optID(a.CabinetName, a.CabinetID),
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d appointment(s)\n", len(rows))
	return nil
}

func runCreate(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	var (
		patientID = fs.Int64("patient", 0, "id пациента (0 - первый из справочника)")
		doctorID  = fs.Int64("doctor", 0, "id врача")
		serviceID = fs.Int64("service", 0, "id услуги")
		cabinetID = fs.Int64("cabinet", 0, "id кабинета")
		start     = fs.String("start", "", "начало приема, локальное время YYYY-MM-DD HH:MM")
		duration  = fs.Int("duration", domain.DefaultDurationMinutes, "длительность в минутах")
		status    = fs.String("status", string(domain.DefaultStatus), "начальный статус")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *start == "" {
		return fmt.Errorf("flag -start is required")
	}
	startAt, err := time.ParseInLocation(domain.LocalTimeFormat, *start, time.Local)
	if err != nil {
		return fmt.Errorf("invalid -start %q: expected format %q", *start, domain.LocalTimeFormat)
	}

	st := domain.AppointmentStatus(strings.ToUpper(*status))
	if !st.IsKnown() {
		return fmt.Errorf("unknown status %q, expected one of %s", *status, statusList())
	}

	// Справочники запрашиваются параллельно; непереданные id
	// подставляются первыми элементами соответствующих списков
	defaults, err := fetchDefaults(ctx, api)
	if err != nil {
		return err
	}

	req := &domain.AppointmentCreate{
		PatientID:       orDefault(*patientID, defaults.patient),
		DoctorID:        orDefault(*doctorID, defaults.doctor),
		ServiceID:       orDefault(*serviceID, defaults.service),
		CabinetID:       orDefault(*cabinetID, defaults.cabinet),
		StartAt:         startAt,
		DurationMinutes: *duration,
		Status:          st,
	}

	id, err := api.CreateAppointment(ctx, req)
	if err != nil {
		return err
	}

	fmt.Printf("created appointment %d (patient=%d doctor=%d service=%d cabinet=%d start=%s)\n",
		id, req.PatientID, req.DoctorID, req.ServiceID, req.CabinetID, startAt.Format(domain.LocalTimeFormat))
	return nil
}

// statusChange одна смена статуса из аргумента id=STATUS
type statusChange struct {
	id     int64
	status domain.AppointmentStatus
}

// statusResult исход смены статуса для одной записи
type statusResult struct {
	id  int64
	upd *domain.AppointmentStatusUpdate
	err error
}

// statusUpdater часть API-клиента, нужная для смены статусов
type statusUpdater interface {
	UpdateAppointmentStatus(ctx context.Context, id int64, status domain.AppointmentStatus) (*domain.AppointmentStatusUpdate, error)
}

// parseStatusChanges разбирает аргументы вида id=STATUS
func parseStatusChanges(args []string) ([]statusChange, error) {
	changes := make([]statusChange, 0, len(args))
	for _, arg := range args {
		parts := strings.SplitN(arg, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed argument %q, expected id=STATUS", arg)
		}
		id, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("malformed appointment id %q", parts[0])
		}
		st := domain.AppointmentStatus(strings.ToUpper(parts[1]))
		if !st.IsKnown() {
			return nil, fmt.Errorf("unknown status %q, expected one of %s", parts[1], statusList())
		}
		changes = append(changes, statusChange{id: id, status: st})
	}
	return changes, nil
}

// applyStatusChanges применяет смены статусов конкурентно, по одной горутине
// на запись. Исходы независимы: неудача одной записи не прерывает остальные,
// порядок результатов совпадает с порядком аргументов
func applyStatusChanges(ctx context.Context, api statusUpdater, changes []statusChange) []statusResult {
	results := make([]statusResult, len(changes))
	var wg sync.WaitGroup
	for i, ch := range changes {
		wg.Add(1)
		go func(i int, ch statusChange) {
			defer wg.Done()
			upd, err := api.UpdateAppointmentStatus(ctx, ch.id, ch.status)
			results[i] = statusResult{id: ch.id, upd: upd, err: err}
		}(i, ch)
	}
	wg.Wait()
	return results
}

func runSetStatus(ctx context.Context, api *client.Client, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("expected at least one id=STATUS argument")
	}

	changes, err := parseStatusChanges(args)
	if err != nil {
		return err
	}

	results := applyStatusChanges(ctx, api, changes)

	failed := 0
	for _, res := range results {
		if res.err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "appointment %d: %v\n", res.id, res.err)
			continue
		}
		fmt.Printf("appointment %d -> %s\n", res.upd.AppointmentID, res.upd.Status)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d updates failed", failed, len(changes))
	}
	return nil
}

func runExport(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	out := fs.String("o", "appointments.csv", "путь к файлу выгрузки")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rows, err := api.Appointments(ctx)
	if err != nil {
		return err
	}

	if err := os.WriteFile(*out, export.AppointmentsCSV(rows), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", *out, err)
	}

	fmt.Printf("exported %d appointment(s) to %s\n", len(rows), *out)
	return nil
}

// dictionaryDefaults первые элементы каждого справочника
type dictionaryDefaults struct {
	patient int64
	doctor  int64
	service int64
	cabinet int64
}

// fetchDefaults запрашивает четыре справочника параллельно
func fetchDefaults(ctx context.Context, api *client.Client) (*dictionaryDefaults, error) {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		defaults dictionaryDefaults
		firstErr error
	)

	setErr := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = err
		}
	}

	wg.Add(4)
	go func() {
		defer wg.Done()
		if rows, err := api.Patients(ctx); err != nil {
			setErr(err)
		} else if len(rows) > 0 {
			defaults.patient = rows[0].ID
		}
	}()
	go func() {
		defer wg.Done()
		if rows, err := api.Doctors(ctx); err != nil {
			setErr(err)
		} else if len(rows) > 0 {
			defaults.doctor = rows[0].ID
		}
	}()
	go func() {
		defer wg.Done()
		if rows, err := api.Services(ctx); err != nil {
			setErr(err)
		} else if len(rows) > 0 {
			defaults.service = rows[0].ID
		}
	}()
	go func() {
		defer wg.Done()
		if rows, err := api.Cabinets(ctx); err != nil {
			setErr(err)
		} else if len(rows) > 0 {
			defaults.cabinet = rows[0].ID
		}
	}()
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return &defaults, nil
}

func orDefault(v, fallback int64) int64 {
	if v > 0 {
		return v
	}
	return fallback
}

func optID(name *string, id int64) string {
	if name != nil && *name != "" {
		return *name
	}
	return "#" + strconv.FormatInt(id, 10)
}

func statusList() string {
	names := make([]string, 0, len(domain.KnownStatuses))
	for _, s := range domain.KnownStatuses {
		names = append(names, string(s))
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
