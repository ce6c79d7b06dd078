// Сидер тестовых данных: наполняет БД справочниками и записями на прием.
// Предназначен для разработки и демо-стендов, на продовой БД не запускать
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/m04kA/SMC-ClinicService/internal/config"
	"github.com/m04kA/SMC-ClinicService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-ClinicService/internal/infra/storage/appointment"
	dictionaryRepo "github.com/m04kA/SMC-ClinicService/internal/infra/storage/dictionary"
	"github.com/m04kA/SMC-ClinicService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ClinicService/pkg/dbpool"
	"github.com/m04kA/SMC-ClinicService/pkg/logger"
)

// modalities типы исследований, общие для услуг и кабинетов
var modalities = []string{"УЗИ", "Рентген", "МРТ", "КТ", "Маммография"}

var specialties = []string{
	"Врач УЗД",
	"Рентгенолог",
	"Терапевт",
	"Хирург",
	"Кардиолог",
}

var serviceNames = map[string][]string{
	"УЗИ":          {"УЗИ брюшной полости", "УЗИ щитовидной железы", "УЗИ сердца", "УЗИ сосудов шеи"},
	"Рентген":      {"Рентген грудной клетки", "Рентген кисти", "Рентген позвоночника"},
	"МРТ":          {"МРТ головного мозга", "МРТ коленного сустава", "МРТ позвоночника"},
	"КТ":           {"КТ легких", "КТ брюшной полости"},
	"Маммография":  {"Маммография обзорная"},
}

func main() {
	var (
		configPath      = flag.String("config", "config.toml", "путь к конфигурационному файлу")
		doctorsCount    = flag.Int("doctors", 8, "количество врачей")
		patientsCount   = flag.Int("patients", 40, "количество пациентов")
		appointmentsCnt = flag.Int("appointments", 120, "количество записей на прием")
		seed            = flag.Int64("seed", 0, "seed генератора (0 - случайный)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New("", cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	faker := gofakeit.New(uint64(*seed))

	pool := dbpool.New(dbpool.Options{
		DSN:             cfg.Database.DSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	}, nil)
	defer pool.Shutdown()

	ctx := context.Background()
	db, err := pool.Get(ctx)
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}

	dictionaries := dictionaryRepo.NewRepository(pool)
	appointments := appointmentRepo.NewRepository(pool)

	log.Info("Seeding dictionaries (doctors=%d, patients=%d)...", *doctorsCount, *patientsCount)

	// Справочники заливаются одной транзакцией: либо все, либо ничего
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Fatal("Failed to begin transaction: %v", err)
	}
	txCtx := dbmetrics.WithTx(ctx, tx)

	ids, err := seedDictionaries(txCtx, dictionaries, faker, *doctorsCount, *patientsCount)
	if err != nil {
		_ = tx.Rollback()
		log.Fatal("Failed to seed dictionaries: %v", err)
	}
	if err := tx.Commit(); err != nil {
		log.Fatal("Failed to commit dictionaries: %v", err)
	}

	log.Info("Dictionaries seeded: doctors=%d, services=%d, cabinets=%d, patients=%d",
		len(ids.doctors), len(ids.services), len(ids.cabinets), len(ids.patients))

	log.Info("Seeding appointments (count=%d)...", *appointmentsCnt)

	created := 0
	now := time.Now().UTC()
	for i := 0; i < *appointmentsCnt; i++ {
		params := randomAppointment(faker, ids, now)
		if _, err := appointments.Create(ctx, params); err != nil {
			log.Warn("Failed to create appointment: %v", err)
			continue
		}
		created++
	}

	log.Info("Seeding finished: appointments created=%d", created)
}

// seededIDs идентификаторы созданных записей справочников
type seededIDs struct {
	doctors  []int64
	services []int64
	cabinets []int64
	patients []int64
}

func seedDictionaries(ctx context.Context, repo *dictionaryRepo.Repository, faker *gofakeit.Faker, doctors, patients int) (*seededIDs, error) {
	ids := &seededIDs{}

	for i := 0; i < doctors; i++ {
		specialty := specialties[i%len(specialties)]
		id, err := repo.CreateDoctor(ctx, &domain.Doctor{
			FullName:  fmt.Sprintf("%s %s.%s.", faker.LastName(), initial(faker), initial(faker)),
			Specialty: &specialty,
			IsActive:  true,
		})
		if err != nil {
			return nil, err
		}
		ids.doctors = append(ids.doctors, id)
	}

	for _, modality := range modalities {
		m := modality
		for _, name := range serviceNames[modality] {
			price := float64(faker.Number(400, 3000))
			id, err := repo.CreateService(ctx, &domain.Service{
				Name:      name,
				Modality:  &m,
				BasePrice: &price,
				IsActive:  true,
			})
			if err != nil {
				return nil, err
			}
			ids.services = append(ids.services, id)
		}
	}

	for i, modality := range modalities {
		m := modality
		code := fmt.Sprintf("K-%d%02d", i+1, faker.Number(1, 20))
		id, err := repo.CreateCabinet(ctx, &domain.Cabinet{
			Code:     &code,
			Name:     fmt.Sprintf("Кабинет %s", modality),
			Modality: &m,
			IsActive: true,
		})
		if err != nil {
			return nil, err
		}
		ids.cabinets = append(ids.cabinets, id)
	}

	for i := 0; i < patients; i++ {
		code := fmt.Sprintf("P-%05d", i+1)
		last4 := fmt.Sprintf("%04d", faker.Number(0, 9999))
		id, err := repo.CreatePatient(ctx, &domain.Patient{
			Code:        &code,
			DisplayName: fmt.Sprintf("%s %s.%s.", faker.LastName(), initial(faker), initial(faker)),
			PhoneLast4:  &last4,
		})
		if err != nil {
			return nil, err
		}
		ids.patients = append(ids.patients, id)
	}

	return ids, nil
}

// randomAppointment собирает параметры записи в пределах ближайших двух недель
// Вся случайность идет через faker: фиксированный -seed воспроизводит прогон
func randomAppointment(faker *gofakeit.Faker, ids *seededIDs, base time.Time) *domain.AppointmentCreate {
	day := faker.Number(-7, 6)
	hour := faker.Number(8, 17)
	minute := []int{0, 15, 30, 45}[faker.Number(0, 3)]

	start := time.Date(base.Year(), base.Month(), base.Day(), hour, minute, 0, 0, time.UTC).
		AddDate(0, 0, day)

	statuses := domain.KnownStatuses

	return &domain.AppointmentCreate{
		PatientID:       pick(faker, ids.patients),
		DoctorID:        pick(faker, ids.doctors),
		ServiceID:       pick(faker, ids.services),
		CabinetID:       pick(faker, ids.cabinets),
		StartAt:         start,
		DurationMinutes: []int{15, 30, 45, 60}[faker.Number(0, 3)],
		Status:          statuses[faker.Number(0, len(statuses)-1)],
	}
}

func pick(faker *gofakeit.Faker, ids []int64) int64 {
	return ids[faker.Number(0, len(ids)-1)]
}

func initial(faker *gofakeit.Faker) string {
	letters := []rune("АБВГДЕИКЛМНОПРСТ")
	return string(letters[faker.Number(0, len(letters)-1)])
}
