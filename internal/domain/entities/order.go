package entities

import (
	"fmt"
	"time"
)

// OrderStatus values. Completed, Rejected and Cancelled are terminal and
// retained for audit; orders are never destroyed.

type OrderStatus string

const (
	OrderStatusWaitingApproval OrderStatus = "waiting_approval"
	OrderStatusWaitingStart    OrderStatus = "waiting_start"
	OrderStatusProcessing      OrderStatus = "processing"
	OrderStatusCompleted       OrderStatus = "completed"
	OrderStatusRejected        OrderStatus = "rejected"
	OrderStatusCancelled       OrderStatus = "cancelled"
)

// OrderAction is a requested transition on an order.

type OrderAction string

const (
	OrderActionAccept   OrderAction = "accept"
	OrderActionReject   OrderAction = "reject"
	OrderActionStart    OrderAction = "start"
	OrderActionComplete OrderAction = "complete"
	OrderActionCancel   OrderAction = "cancel"
)

// orderTransitions is the full allowed-transition table. Anything outside it
// is a contract violation, surfaced as InvalidTransitionError and never
// silently ignored.
var orderTransitions = map[OrderStatus]map[OrderAction]OrderStatus{
	OrderStatusWaitingApproval: {
		OrderActionAccept: OrderStatusWaitingStart,
		OrderActionReject: OrderStatusRejected,
		OrderActionCancel: OrderStatusCancelled,
	},
	OrderStatusWaitingStart: {
		OrderActionStart:  OrderStatusProcessing,
		OrderActionReject: OrderStatusRejected,
		OrderActionCancel: OrderStatusCancelled,
	},
	OrderStatusProcessing: {
		OrderActionComplete: OrderStatusCompleted,
		OrderActionCancel:   OrderStatusCancelled,
	},
}

// actionRoles gates each action: accept/reject/start belong to the assigned
// provider, complete/cancel to the administrative review path.
var actionRoles = map[OrderAction]Role{
	OrderActionAccept:   RoleProvider,
	OrderActionReject:   RoleProvider,
	OrderActionStart:    RoleProvider,
	OrderActionComplete: RoleAdmin,
	OrderActionCancel:   RoleAdmin,
}

// InvalidTransitionError identifies the current state and the attempted
// action of a disallowed transition.
type InvalidTransitionError struct {
	From   OrderStatus
	Action OrderAction
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid order transition: action %q not allowed in status %q", e.Action, e.From)
}

// NextOrderStatus resolves the target status for an action, or an
// InvalidTransitionError when the (status, action) pair is not in the table.
func NextOrderStatus(from OrderStatus, action OrderAction) (OrderStatus, error) {
	if next, ok := orderTransitions[from][action]; ok {
		return next, nil
	}
	return "", &InvalidTransitionError{From: from, Action: action}
}

// RoleForAction returns the role allowed to perform an action.
func RoleForAction(action OrderAction) (Role, bool) {
	r, ok := actionRoles[action]
	return r, ok
}

func (s OrderStatus) Terminal() bool {
	switch s {
	case OrderStatusCompleted, OrderStatusRejected, OrderStatusCancelled:
		return true
	}
	return false
}

// Order (project) is the provider-side materialization of a viable request.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (provider_id-index): provider_id
//   - GSI2 (request_id-index): request_id (1:1 with the request)
//   - GSI3 (status-index): status
type Order struct {
	ID          string      `json:"id"`
	RequestID   string      `json:"request_id"`
	ProviderID  string      `json:"provider_id"`
	Status      OrderStatus `json:"status"`
	StartDate   *time.Time  `json:"start_date,omitempty"`
	DueDate     *time.Time  `json:"due_date,omitempty"`
	CompletedAt *time.Time  `json:"completed_at,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Expired is derived at read time and never stored: an order past its due
// date that has not completed. It is a reporting flag, not a status, and is
// never a transition target.
func (o Order) Expired(now time.Time) bool {
	return o.DueDate != nil && o.DueDate.Before(now) && o.Status != OrderStatusCompleted
}
