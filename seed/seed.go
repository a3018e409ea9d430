// Package seed writes the demonstration data set so a first launch is not
// empty. Each key is only written when absent, which makes Apply safe to
// run on every startup. Seeding is a bootstrap concern; the domain stores
// never seed on their own.
package seed

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ErickIraizos/v2trello/activity"
	"github.com/ErickIraizos/v2trello/board"
	"github.com/ErickIraizos/v2trello/domain"
	"github.com/ErickIraizos/v2trello/notification"
	"github.com/ErickIraizos/v2trello/storage"
	"github.com/ErickIraizos/v2trello/users"
)

// DefaultBoardID is the id of the seeded demonstration board. Stable so that
// re-seeding after a partial wipe lines up with any surviving card map.
const DefaultBoardID = "board-ventas"

// Apply seeds boards, cards, users and notifications for any key that does
// not hold a value yet. A nil logger falls back to the standard logger.
func Apply(kv *storage.KV, logger *log.Logger) error {
	if logger == nil {
		logger = log.StandardLogger()
	}
	now := time.Now()

	if !kv.Has(board.BoardsKey) {
		if err := kv.Write(board.BoardsKey, demoBoards(now)); err != nil {
			return err
		}
		logger.Info("seed: wrote demonstration boards")
	}
	if !kv.Has(board.CardsKey(DefaultBoardID)) {
		if err := kv.Write(board.CardsKey(DefaultBoardID), demoCards()); err != nil {
			return err
		}
		logger.Info("seed: wrote demonstration cards")
	}
	if !kv.Has(users.Key) {
		if err := kv.Write(users.Key, demoUsers()); err != nil {
			return err
		}
		logger.Info("seed: wrote demonstration users")
	}
	if !kv.Has(notification.Key) {
		if err := kv.Write(notification.Key, demoNotifications(now)); err != nil {
			return err
		}
		logger.Info("seed: wrote demonstration notifications")
	}
	if !kv.Has(activity.Key) {
		if err := kv.Write(activity.Key, []domain.ActivityEntry{}); err != nil {
			return err
		}
	}
	return nil
}

func demoBoards(now time.Time) []domain.Board {
	return []domain.Board{
		{
			ID:        DefaultBoardID,
			Title:     "Pipeline de Ventas",
			CreatedAt: now,
			IsDefault: true,
			Columns: []domain.Column{
				{ID: "col-planeacion", Title: "Planeación", CardIDs: []string{"card-acme", "card-globex"}},
				{ID: "col-progreso", Title: "En Progreso", CardIDs: []string{"card-initech"}},
				{ID: "col-revision", Title: "Revisión", CardIDs: []string{"card-umbrella"}},
				{ID: "col-completado", Title: "Completado", CardIDs: []string{"card-techsol"}},
			},
		},
	}
}

func demoCards() map[string]domain.Card {
	return map[string]domain.Card{
		"card-acme": {
			ID:          "card-acme",
			Title:       "Propuesta para Acme Corp",
			Description: "Preparar y enviar la propuesta comercial inicial",
			Customer:    "Acme Corp",
			Value:       15000,
			Probability: 40,
			Priority:    domain.PriorityHigh,
			DueDate:     "2026-09-15",
			CreatedBy:   "María García",
		},
		"card-globex": {
			ID:          "card-globex",
			Title:       "Llamada de descubrimiento Globex",
			Description: "Agendar llamada para levantar requerimientos",
			Customer:    "Globex",
			Value:       8000,
			Probability: 25,
			Priority:    domain.PriorityMedium,
			CreatedBy:   "Juan López",
		},
		"card-initech": {
			ID:          "card-initech",
			Title:       "Demo de producto Initech",
			Description: "Demo técnica con el equipo de compras",
			Customer:    "Initech",
			Value:       22000,
			Probability: 60,
			Priority:    domain.PriorityHigh,
			Progress:    50,
			DueDate:     "2026-09-08",
			CreatedBy:   "María García",
		},
		"card-umbrella": {
			ID:          "card-umbrella",
			Title:       "Contrato Umbrella en revisión legal",
			Description: "Esperando comentarios del área legal",
			Customer:    "Umbrella",
			Value:       31000,
			Probability: 80,
			Priority:    domain.PriorityMedium,
			Progress:    75,
			CreatedBy:   "Ana Torres",
		},
		"card-techsol": {
			ID:          "card-techsol",
			Title:       "Cierre TechSolutions Inc",
			Description: "Negocio cerrado y facturado",
			Customer:    "TechSolutions Inc",
			Value:       45000,
			Probability: 100,
			Status:      domain.StatusCompleted,
			Progress:    100,
			ClosingDate: "2026-08-20",
			CreatedBy:   "Juan López",
		},
	}
}

func demoUsers() []domain.User {
	return []domain.User{
		{ID: "user-maria", Name: "María García", Email: "maria.garcia@v2trello.test", Avatar: "MG", Department: "Ventas", Role: "Ejecutiva de Cuentas", JoinDate: "2023-02-13"},
		{ID: "user-juan", Name: "Juan López", Email: "juan.lopez@v2trello.test", Avatar: "JL", Department: "Ventas", Role: "Gerente Comercial", JoinDate: "2022-07-01"},
		{ID: "user-ana", Name: "Ana Torres", Email: "ana.torres@v2trello.test", Avatar: "AT", Department: "Legal", Role: "Abogada", JoinDate: "2024-01-08"},
	}
}

func demoNotifications(now time.Time) []domain.Notification {
	return []domain.Notification{
		{
			ID:        "notif-seed-1",
			Title:     "Nueva tarea asignada",
			Body:      "Se te ha asignado la tarea 'Revisión de propuesta para Acme Corp'",
			Type:      domain.NotificationInfo,
			Link:      "/lists",
			CreatedAt: now.Add(-5 * time.Minute),
		},
		{
			ID:        "notif-seed-2",
			Title:     "Reunión en 30 minutos",
			Body:      "Recordatorio: Reunión con el equipo de ventas a las 3:00 PM",
			Type:      domain.NotificationWarning,
			Link:      "/calendar",
			CreatedAt: now.Add(-25 * time.Minute),
		},
		{
			ID:        "notif-seed-3",
			Title:     "Negocio cerrado",
			Body:      "¡Felicidades! El negocio con TechSolutions Inc se cerró exitosamente",
			Type:      domain.NotificationSuccess,
			Read:      true,
			CreatedAt: now.Add(-48 * time.Hour),
		},
	}
}
