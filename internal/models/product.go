package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表
type Product struct {
	ID          uint           `gorm:"primarykey" json:"id"`                               // 主键
	Name        string         `gorm:"type:varchar(255);not null;index" json:"name"`       // 商品名称
	Category    string         `gorm:"type:varchar(100);not null" json:"category"`         // 分类标签（文本）
	Description string         `gorm:"type:text" json:"description"`                       // 描述
	Price       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // 单价
	StockCount  int            `gorm:"not null;default:0" json:"stock_count"`              // 库存数量
	Brand       string         `gorm:"type:varchar(100)" json:"brand"`                     // 品牌
	ImageURL    string         `gorm:"type:varchar(500)" json:"image_url"`                 // 图片地址
	IsAvailable bool           `gorm:"not null;index" json:"is_available"`                 // 是否可售
	CategoryID  *uint          `gorm:"index" json:"category_id"`                           // 分类ID（可选）
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                            // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                                         // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                     // 软删除时间

	CategoryRef *Category `gorm:"foreignKey:CategoryID" json:"category_detail,omitempty"` // 关联分类
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
