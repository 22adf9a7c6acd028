package models

import (
	"time"

	"gorm.io/gorm"
)

// User 用户表
type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`                                   // 主键
	Username     string         `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"` // 用户名
	Email        string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`    // 邮箱
	PasswordHash string         `gorm:"not null" json:"-"`                                      // 密码哈希（不返回给前端）
	FirstName    string         `gorm:"type:varchar(100)" json:"first_name"`                    // 名
	LastName     string         `gorm:"type:varchar(100)" json:"last_name"`                     // 姓
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                                // 创建时间
	UpdatedAt    time.Time      `json:"updated_at"`                                             // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                                         // 软删除时间
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
