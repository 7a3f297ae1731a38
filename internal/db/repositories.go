package db

import "gorm.io/gorm"

type Repositories struct {
	Users    *UserRepository
	Events   *EventRepository
	Families *FamilyRepository
	Media    *MediaRepository
	Contacts *ContactRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(database),
		Events:   NewEventRepository(database),
		Families: NewFamilyRepository(database),
		Media:    NewMediaRepository(database),
		Contacts: NewContactRepository(database),
	}
}
