package metadata

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetValue 读取一个键的值，键不存在时返回空字符串
func GetValue(ctx context.Context, db *gorm.DB, key string) (string, error) {
	var meta Metadata
	err := db.WithContext(ctx).Where("key = ?", key).First(&meta).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return meta.Value, nil
}

// SetValue 以 upsert 的方式写入一个键
func SetValue(ctx context.Context, db *gorm.DB, key, value string) error {
	meta := Metadata{
		Key:   key,
		Value: value,
	}
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&meta).Error
}

// GetTime 读取一个时间类型的键，未设置时返回零值
func GetTime(ctx context.Context, db *gorm.DB, key string) (time.Time, error) {
	valueStr, err := GetValue(ctx, db, key)
	if err != nil || valueStr == "" {
		return time.Time{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, valueStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("无法解析元数据 '%s' 的值: %w", key, err)
	}
	return t, nil
}

func SetTime(ctx context.Context, db *gorm.DB, key string, t time.Time) error {
	return SetValue(ctx, db, key, t.UTC().Format(time.RFC3339Nano))
}

// Increment 把一个整数键加一并返回新值，未设置的键视为 0
func Increment(ctx context.Context, db *gorm.DB, key string) (uint64, error) {
	var next uint64
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		valueStr, err := GetValue(ctx, tx, key)
		if err != nil {
			return err
		}
		if valueStr != "" {
			current, err := strconv.ParseUint(valueStr, 10, 64)
			if err != nil {
				return fmt.Errorf("无法解析元数据 '%s' 的值: %w", key, err)
			}
			next = current
		}
		next++
		return SetValue(ctx, tx, key, strconv.FormatUint(next, 10))
	})
	return next, err
}
