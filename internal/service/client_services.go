package service

import (
	"github.com/saeedstore/erp-session/internal/adapter"
	"github.com/saeedstore/erp-session/internal/logger"
	"github.com/saeedstore/erp-session/internal/store"
)

type ClientServices struct {
	SessionClient SessionClient
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		SessionClient: NewSessionClient(storages.TokenSlot, serverAdapter, logger),
	}
}
