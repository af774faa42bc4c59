package statemachine

import (
	"errors"

	"campus-eats-api/models"
)

// Transition defines a valid state change and who can perform it
type Transition struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor string // "vendor", "admin", "student"
}

// validTransitions is the authoritative state machine definition.
// Vendors drive the normal lifecycle; admins may perform every vendor
// transition; a student may only cancel an order that is still PENDING.
var validTransitions = []Transition{
	// Vendor confirms or rejects a fresh order
	{From: models.StatusPending, To: models.StatusConfirmed, Actor: "vendor"},
	{From: models.StatusPending, To: models.StatusCancelled, Actor: "vendor"},
	{From: models.StatusPending, To: models.StatusCancelled, Actor: "student"},
	// Kitchen flow
	{From: models.StatusConfirmed, To: models.StatusPreparing, Actor: "vendor"},
	{From: models.StatusPreparing, To: models.StatusReady, Actor: "vendor"},
	{From: models.StatusReady, To: models.StatusCompleted, Actor: "vendor"},
	// Any non-terminal state can be cancelled by the vendor
	{From: models.StatusConfirmed, To: models.StatusCancelled, Actor: "vendor"},
	{From: models.StatusPreparing, To: models.StatusCancelled, Actor: "vendor"},
	{From: models.StatusReady, To: models.StatusCancelled, Actor: "vendor"},
}

// transitionKey is used to look up valid transitions quickly
type transitionKey struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor string
}

// Build a lookup map for O(1) validation; admin inherits every vendor move.
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
		if t.Actor == "vendor" {
			m[transitionKey{t.From, t.To, "admin"}] = true
		}
	}
	return m
}()

// IsTerminal reports whether a status admits no further transitions.
func IsTerminal(status models.OrderStatus) bool {
	return status == models.StatusCompleted || status == models.StatusCancelled
}

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks if a given actor can move from one state to another
func CanTransition(from, to models.OrderStatus, actor string) error {
	key := transitionKey{From: from, To: to, Actor: actor}
	if transitionMap[key] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " -> " + string(to) +
			" is not allowed for actor '" + actor + "'. " +
			"Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
