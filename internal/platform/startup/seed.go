package startup

import (
	"context"
	"fmt"
	"time"

	"github.com/SlpAus/skillswap-connect-backend/internal/platform/logger"
	"github.com/SlpAus/skillswap-connect-backend/internal/platform/metadata"
	"gorm.io/gorm"
)

type demoUser struct {
	Username string
	Teach    []string
	Learn    []string
}

var demoUsers = []demoUser{
	{Username: "demo", Teach: []string{"Coding", "Chess"}, Learn: []string{"Guitar", "Cooking"}},
	{Username: "alex", Teach: []string{"Guitar", "Photography"}, Learn: []string{"Coding", "Public Speaking"}},
	{Username: "taylor", Teach: []string{"Cooking", "Writing"}, Learn: []string{"Photography", "Chess"}},
	{Username: "sam", Teach: []string{"Yoga", "Public Speaking"}, Learn: []string{"Writing", "Coding"}},
	{Username: "jordan", Teach: []string{"Painting", "Dancing"}, Learn: []string{"Yoga", "Photography"}},
}

var demoBadges = []struct {
	Username string
	Badges   []string
}{
	{Username: "alex", Badges: []string{"Super Teacher", "Helper", "Mentor"}},
	{Username: "taylor", Badges: []string{"Fast Learner", "Creative Chef"}},
	{Username: "demo", Badges: []string{"Community Star"}},
	{Username: "sam", Badges: []string{"Collaborator"}},
	{Username: "jordan", Badges: []string{"Rising Talent"}},
}

var demoThanks = []struct {
	From, To, Message string
}{
	{From: "demo", To: "alex", Message: "Thanks for the awesome guitar session!"},
	{From: "taylor", To: "demo", Message: "Loved the coding tips!"},
}

// SeedDemo 写入演示数据。每一步都先检查已有记录，因此重复调用是幂等的。
func SeedDemo(ctx context.Context, db *gorm.DB, stores *Stores) error {
	last, err := metadata.GetTime(ctx, db, metadata.DemoSeededAtKey)
	if err != nil {
		return err
	}
	if last.IsZero() {
		logger.Info("正在写入演示数据...")
	} else {
		logger.Info("演示数据已于 %s 写入过，仅补齐缺失的部分...", last.Format(time.RFC3339))
	}

	ids := make(map[string]string, len(demoUsers))
	for _, d := range demoUsers {
		u, err := stores.Users.Login(ctx, d.Username)
		if err != nil {
			return fmt.Errorf("无法创建演示用户 %s: %w", d.Username, err)
		}
		if _, err := stores.Users.UpdateProfile(ctx, u.UUID, d.Teach, d.Learn); err != nil {
			return fmt.Errorf("无法设置演示用户 %s 的资料: %w", d.Username, err)
		}
		ids[d.Username] = u.UUID
	}

	for _, b := range demoBadges {
		for _, name := range b.Badges {
			if _, err := stores.Badges.Award(ctx, b.Username, name); err != nil {
				return fmt.Errorf("无法授予演示徽章 %s: %w", name, err)
			}
		}
	}

	count, err := stores.Thanks.Count(ctx)
	if err != nil {
		return err
	}
	if count == 0 {
		for _, t := range demoThanks {
			if _, err := stores.Thanks.Post(ctx, t.From, t.To, t.Message); err != nil {
				return fmt.Errorf("无法写入演示感谢留言: %w", err)
			}
		}
	}

	demoID, alexID := ids["demo"], ids["alex"]
	exists, err := stores.Sessions.ExistsBetween(ctx, demoID, alexID)
	if err != nil {
		return err
	}
	if !exists {
		s, err := stores.Sessions.Propose(ctx, demoID, alexID, "Guitar", time.Now().Add(time.Hour))
		if err != nil {
			return fmt.Errorf("无法创建演示会话: %w", err)
		}
		if _, err := stores.Sessions.Accept(ctx, s.UUID); err != nil {
			return fmt.Errorf("无法接受演示会话: %w", err)
		}
	}

	if err := metadata.SetTime(ctx, db, metadata.DemoSeededAtKey, time.Now()); err != nil {
		return fmt.Errorf("无法记录演示数据写入时间: %w", err)
	}
	runs, err := metadata.Increment(ctx, db, metadata.DemoSeedRunsKey)
	if err != nil {
		return fmt.Errorf("无法记录演示数据写入次数: %w", err)
	}

	logger.Success("演示数据写入完成（第 %d 次），共 %d 个演示用户。", runs, len(demoUsers))
	return nil
}
