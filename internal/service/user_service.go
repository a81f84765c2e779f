package service

import (
	"fmt"

	"smartshelfx/internal/model"
	"smartshelfx/internal/store"
	"smartshelfx/pkg/validator"
)

type UserService interface {
	GetAllUsers() []model.User
	CreateUser(req *model.User) (model.User, error)
	UpdateUser(req model.User) error
	DeleteUser(id int64)
}

type userService struct {
	state *store.State
}

func NewUserService(state *store.State) UserService {
	return &userService{state: state}
}

func (s *userService) GetAllUsers() []model.User {
	return s.state.Users()
}

func (s *userService) CreateUser(req *model.User) (model.User, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return model.User{}, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}
	return s.state.AddUser(*req), nil
}

// UpdateUser replaces the roster entry; the container refreshes the session
// slot itself when the edited id matches the signed-in user.
func (s *userService) UpdateUser(req model.User) error {
	if errs := validator.ValidateStruct(&req); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}
	s.state.UpdateUser(req)
	return nil
}

func (s *userService) DeleteUser(id int64) {
	s.state.DeleteUser(id)
}
