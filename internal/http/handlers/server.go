package handlers

import (
	"github.com/omercengiz/warehouse-pro/internal/alert"
	"github.com/omercengiz/warehouse-pro/internal/inventory"
	"github.com/omercengiz/warehouse-pro/internal/repo"
)

var (
	inventorySvc *inventory.Service
	userRepo     repo.UserRepository
	dispatcher   *alert.Dispatcher
)

func SetInventoryService(s *inventory.Service) {
	inventorySvc = s
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetDispatcher(d *alert.Dispatcher) {
	dispatcher = d
}
