package service

import (
	"strings"

	"github.com/techmarket-api/internal/logger"
	"github.com/techmarket-api/internal/models"
	"github.com/techmarket-api/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// CreateUserInput 创建用户输入
type CreateUserInput struct {
	Username  string `json:"username" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	FirstName string `json:"first_name" validate:"max=100"`
	LastName  string `json:"last_name" validate:"max=100"`
}

// LoginInput 登录输入，Login 可以是用户名或邮箱
type LoginInput struct {
	Login    string
	Password string
}

// UserService 用户服务
type UserService struct {
	userRepo     repository.UserRepository
	purgeService *PurgeService
}

// NewUserService 创建用户服务
func NewUserService(userRepo repository.UserRepository, purgeService *PurgeService) *UserService {
	return &UserService{
		userRepo:     userRepo,
		purgeService: purgeService,
	}
}

// List 用户列表
func (s *UserService) List() ([]models.User, error) {
	return s.userRepo.List()
}

// GetByID 获取用户
func (s *UserService) GetByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Create 创建用户，密码以 bcrypt 存储
func (s *UserService) Create(input CreateUserInput) (*models.User, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := validateInput(input); err != nil {
		return nil, err
	}

	count, err := s.userRepo.CountByUsernameOrEmail(input.Username, input.Email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUserExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	logger.Infow("user_created", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Login 校验用户名/邮箱与密码
func (s *UserService) Login(input LoginInput) (*models.User, error) {
	login := strings.TrimSpace(input.Login)
	if login == "" || strings.TrimSpace(input.Password) == "" {
		return nil, ErrLoginRequired
	}
	if strings.Contains(login, "@") {
		login = strings.ToLower(login)
	}
	user, err := s.userRepo.GetByLogin(login)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	logger.Infow("user_login_succeeded", "user_id", user.ID)
	return user, nil
}

// Delete 删除用户并清理购物车项与评价
func (s *UserService) Delete(id uint) error {
	affected, err := s.userRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	logger.Infow("user_deleted", "user_id", id)
	if s.purgeService == nil {
		return nil
	}
	return s.purgeService.DispatchUserPurge(id)
}
