package models

import "time"

// Review 商品评价
type Review struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                                        // 主键
	ProductID uint      `gorm:"not null;index" json:"product_id"`                                            // 商品ID
	UserID    uint      `gorm:"not null;index" json:"user_id"`                                               // 用户ID
	Rating    int       `gorm:"not null;check:chk_reviews_rating,rating >= 1 AND rating <= 5" json:"rating"` // 评分 1-5
	Comment   string    `gorm:"type:text" json:"comment"`                                                    // 评论内容
	CreatedAt time.Time `gorm:"index" json:"created_at"`                                                     // 创建时间
}

// TableName 指定表名
func (Review) TableName() string {
	return "reviews"
}
