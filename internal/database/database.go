package database

import (
	"fmt"

	"github.com/willythepapi/FITART-v1/config"
)

// Open connects the key/value substrate selected by cfg.StorageDriver.
func Open(cfg *config.Config) (KVStore, error) {
	switch cfg.StorageDriver {
	case config.DriverMemory:
		return NewMemoryKV(), nil
	case config.DriverSQLite:
		db, err := OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return NewGormKV(db)
	case config.DriverPostgres:
		db, err := OpenPostgres(cfg)
		if err != nil {
			return nil, err
		}
		return NewGormKV(db)
	case config.DriverRedis:
		client, err := NewRedisClient(cfg)
		if err != nil {
			return nil, err
		}
		return NewRedisKV(client), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
