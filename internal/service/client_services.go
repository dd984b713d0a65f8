package service

import (
	"github.com/MKhiriev/go-task-keeper/internal/adapter"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
)

type ClientServices struct {
	AuthService ClientAuthService
	TodoService ClientTodoService
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService: NewClientAuthService(localStore, serverAdapter, logger),
		TodoService: NewClientTodoService(localStore, serverAdapter, logger),
	}
}
