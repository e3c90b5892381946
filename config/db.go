package config

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sheikh-mohammad-rakib/employee-management-backend/domain"
	"github.com/sheikh-mohammad-rakib/employee-management-backend/utils"
)

func BootDB(cfg *Config) (*gorm.DB, error) {
	var gormLogger logger.Interface
	if cfg.IsDevelopment() {
		gormLogger = logger.Default.LogMode(logger.Info)
	} else {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL()), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(30 * time.Minute)

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.OTPToken{},
		&domain.Attendance{},
		&domain.LeaveRequest{},
		&domain.Task{},
	); err != nil {
		return nil, err
	}

	if err := seedAdmin(db, cfg); err != nil {
		return nil, err
	}

	log.Info().Msg("connected to database")
	return db, nil
}

// seedAdmin creates the initial admin account on first boot when credentials
// are provided in the environment.
func seedAdmin(db *gorm.DB, cfg *Config) error {
	var count int64
	if err := db.Model(&domain.User{}).Where("role = ?", domain.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Warn().Msg("skipping admin seeding, ADMIN_EMAIL or ADMIN_PASSWORD not set")
		return nil
	}

	hashed, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin := domain.User{
		ID:       uuid.NewString(),
		Name:     cfg.AdminName,
		Email:    cfg.AdminEmail,
		Password: hashed,
		Role:     domain.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Info().Str("email", cfg.AdminEmail).Msg("seeded admin user")
	return nil
}
