package models

import (
	"time"

	"gorm.io/gorm"
)

// SoftDelete 可回收实体的删除标记（删除时间与删除人）
type SoftDelete struct {
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`
	DeletedBy *uint          `gorm:"index" json:"deleted_by"`
}

// IsDeleted 是否已进入回收站
func (s SoftDelete) IsDeleted() bool {
	return s.DeletedAt.Valid
}

// TrashMarker 返回删除时间与删除人
func (s SoftDelete) TrashMarker() (time.Time, *uint) {
	return s.DeletedAt.Time, s.DeletedBy
}

// Trashable 可进入回收站的实体
type Trashable interface {
	TrashKey() uint
	TrashLabel() string
	TrashMarker() (time.Time, *uint)
}

func (a AdminUser) TrashKey() uint  { return a.ID }
func (p BlogPost) TrashKey() uint   { return p.ID }
func (m TeamMember) TrashKey() uint { return m.ID }
func (p Project) TrashKey() uint    { return p.ID }
func (o Offering) TrashKey() uint   { return o.ID }
func (c Client) TrashKey() uint     { return c.ID }
func (a Alliance) TrashKey() uint   { return a.ID }
