package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"github.com/nordeim/Polaris-Family-Clinic/internal/config"
	"github.com/nordeim/Polaris-Family-Clinic/internal/models"
)

const (
	doctorsKey = "polaris:doctors:active"
	doctorsTTL = 5 * time.Minute
)

// DoctorCache keeps the public doctor listing in redis. Every failure path is
// a cache miss; the listing must keep working with redis down.
type DoctorCache struct {
	rdb *redis.Client
}

func NewDoctorCache(cfg *config.Config) *DoctorCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	return &DoctorCache{rdb: rdb}
}

func (c *DoctorCache) Get(ctx context.Context) ([]models.Doctor, bool) {
	raw, err := c.rdb.Get(ctx, doctorsKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Debug().Err(err).Msg("doctor cache read failed")
		}
		return nil, false
	}

	var doctors []models.Doctor
	if err := json.Unmarshal(raw, &doctors); err != nil {
		return nil, false
	}
	return doctors, true
}

func (c *DoctorCache) Set(ctx context.Context, doctors []models.Doctor) {
	raw, err := json.Marshal(doctors)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, doctorsKey, raw, doctorsTTL).Err(); err != nil {
		log.Debug().Err(err).Msg("doctor cache write failed")
	}
}

// Invalidate is called after any doctor mutation (e.g. photo upload).
func (c *DoctorCache) Invalidate(ctx context.Context) {
	if err := c.rdb.Del(ctx, doctorsKey).Err(); err != nil {
		log.Debug().Err(err).Msg("doctor cache invalidation failed")
	}
}
