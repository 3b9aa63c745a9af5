// services/order_transitions.go
package services

import "tableside/entity"

// Allowed status moves. Completed and Cancelled are terminal.
var orderTransitions = map[entity.OrderStatus][]entity.OrderStatus{
	entity.StatusPending:   {entity.StatusPreparing, entity.StatusCancelled},
	entity.StatusPreparing: {entity.StatusCompleted, entity.StatusCancelled},
}

func CanTransition(from, to entity.OrderStatus) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
