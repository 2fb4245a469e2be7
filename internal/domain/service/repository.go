package service

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type Repository interface {
	// DeleteWithAudit executa captura-então-exclusão em uma única
	// transação: coleta os usuários distintos com reserva (qualquer
	// status) referenciando o serviço, grava um DeletedServiceRecord
	// por usuário e remove a linha do serviço. Se a transação aborta,
	// nenhuma linha de auditoria persiste.
	DeleteWithAudit(
		ctx context.Context,
		serviceID uint,
		now time.Time,
	) ([]models.DeletedServiceRecord, error)
}
