// Package services предоставляет фабрику для создания и доступа к сервисам
// пользовательского домена, таким как сервис работы с паролями.
package services

import (
	svc "github.com/TimShare/SkillMap/internal/users/ports/services"
)

// ServiceFactory создает все необходимые сервисы пользовательского домена.
type ServiceFactory struct {
	passwordService svc.PasswordService
}

// NewServiceFactory создает новую фабрику сервисов.
func NewServiceFactory(bcryptCost int) *ServiceFactory {
	return &ServiceFactory{
		passwordService: NewBcrypt(bcryptCost),
	}
}

// PasswordService возвращает сервис для работы с паролями.
func (f *ServiceFactory) PasswordService() svc.PasswordService {
	return f.passwordService
}
