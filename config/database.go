package config

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"ai-doctor-chat-app/config/common"
	"ai-doctor-chat-app/config/logger"
	"ai-doctor-chat-app/entity"
)

type DBConfig struct {
	*gorm.DB
	*logger.AppLogger
}

func NewDB(config *common.Config, log *logger.AppLogger) *DBConfig {
	db := initDatabase(config, log)
	return &DBConfig{DB: db, AppLogger: log}
}

func (db *DBConfig) GetDB() *gorm.DB {
	return db.DB
}

func initDatabase(cfg *common.Config, log *logger.AppLogger) *gorm.DB {
	dbHost, dbUser, dbPassword, dbName, dbPort := cfg.GetDatabaseConfig()
	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		dbUser, dbPassword, dbHost, dbPort, dbName,
	)
	// TranslateError maps MySQL duplicate-entry errors to gorm.ErrDuplicatedKey
	// so the unique phone constraint can be reported as a registration conflict.
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Http.Error.Error().Err(err).Msg("failed to connect to database")
		panic("failed to connect database")
	}

	conn, err := db.DB()
	if err != nil {
		panic("failed to connect database")
	}

	if err := db.AutoMigrate(&entity.User{}, &entity.Message{}); err != nil {
		panic("failed run migration")
	}

	conn.SetMaxIdleConns(10)
	conn.SetMaxOpenConns(100)
	conn.SetConnMaxLifetime(time.Second * time.Duration(300))

	log.Http.Info.Info().Str("database", dbName).Msg("Connection opened to database")
	return db
}
