package repository

import (
	"errors"

	"github.com/techmarket-api/internal/models"

	"gorm.io/gorm"
)

// UserRepository 用户数据访问接口
type UserRepository interface {
	GetByID(id uint) (*models.User, error)
	GetByLogin(login string) (*models.User, error)
	CountByUsernameOrEmail(username, email string) (int64, error)
	List() ([]models.User, error)
	Create(user *models.User) error
	Delete(id uint) (int64, error)
	WithTx(tx *gorm.DB) UserRepository
}

// GormUserRepository GORM 实现
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓库
func NewUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// WithTx 绑定事务
func (r *GormUserRepository) WithTx(tx *gorm.DB) UserRepository {
	if tx == nil {
		return r
	}
	return &GormUserRepository{db: tx}
}

// GetByID 根据 ID 获取用户
func (r *GormUserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetByLogin 根据用户名或邮箱获取用户
func (r *GormUserRepository) GetByLogin(login string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ? OR email = ?", login, login).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// CountByUsernameOrEmail 统计占用用户名或邮箱的账号（含已删除）
func (r *GormUserRepository) CountByUsernameOrEmail(username, email string) (int64, error) {
	var count int64
	err := r.db.Unscoped().Model(&models.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// List 用户列表
func (r *GormUserRepository) List() ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Create 创建用户
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// Delete 软删除用户
func (r *GormUserRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&models.User{}, id)
	return result.RowsAffected, result.Error
}
