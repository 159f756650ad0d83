package services

import (
	"errors"
	"strings"

	"github.com/BtJ-gogo/meta-back-end-developer/entity"
	"github.com/BtJ-gogo/meta-back-end-developer/repository"
	"golang.org/x/crypto/bcrypt"
)

// RosterService manages the Manager and Delivery crew rosters. Roles are
// resolved by name through the role enumeration, never by numeric id.
type RosterService struct {
	UserRepo *repository.UserRepository
}

func NewRosterService(repo *repository.UserRepository) *RosterService {
	return &RosterService{UserRepo: repo}
}

type CreateRosterUserIn struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required"`
}

func (s *RosterService) List(role entity.Role) ([]entity.User, error) {
	return s.UserRepo.ListByRole(role)
}

// Create provisions a new account already holding the role, so the
// Customer bootstrap never fires for staff users.
func (s *RosterService) Create(role entity.Role, in *CreateRosterUserIn) (*entity.User, error) {
	username := strings.TrimSpace(in.Username)

	count, err := s.UserRepo.CountByUsername(username)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	group, err := s.UserRepo.GetGroup(role)
	if err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	user := &entity.User{
		Username: username,
		Email:    strings.TrimSpace(in.Email),
		Password: string(hashed),
		Groups:   []entity.Group{*group},
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Remove strips the role membership from the user; the account itself
// is untouched. Returns gorm.ErrRecordNotFound when no such roster
// entry exists.
func (s *RosterService) Remove(role entity.Role, userID uint) error {
	user, err := s.UserRepo.FindByIDWithRole(userID, role)
	if err != nil {
		return err
	}
	group, err := s.UserRepo.GetGroup(role)
	if err != nil {
		return err
	}
	return s.UserRepo.RemoveRole(user, group)
}
