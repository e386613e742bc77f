package cache

import (
	"context"
	"fmt"
	"time"
)

const publicContentTTL = 2 * time.Minute

// 公开内容缓存分区
const (
	SectionPosts     = "posts"
	SectionTeam      = "team"
	SectionProjects  = "projects"
	SectionServices  = "services"
	SectionClients   = "clients"
	SectionAlliances = "alliances"
)

func publicContentKey(section, variant string) string {
	if variant == "" {
		return fmt.Sprintf("public:%s", section)
	}
	return fmt.Sprintf("public:%s:%s", section, variant)
}

// GetPublicContent 读取公开内容缓存
func GetPublicContent(ctx context.Context, section, variant string, dest interface{}) (bool, error) {
	return GetJSON(ctx, publicContentKey(section, variant), dest)
}

// SetPublicContent 写入公开内容缓存
func SetPublicContent(ctx context.Context, section, variant string, value interface{}) error {
	return SetJSON(ctx, publicContentKey(section, variant), value, publicContentTTL)
}

// InvalidatePublicContent 内容变更后清理对应分区
func InvalidatePublicContent(ctx context.Context, section string, variants ...string) error {
	keys := []string{publicContentKey(section, "")}
	for _, variant := range variants {
		keys = append(keys, publicContentKey(section, variant))
	}
	return Del(ctx, keys...)
}
