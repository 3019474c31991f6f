package market

import (
	"time"

	"github.com/factoquest/factoquest-go/internal/domain/catalog"
)

// expiredRetention is how long an expired order stays visible before it is
// purged from the working set.
const expiredRetention = 24 * time.Hour

// Order is a timed special order from a client. Lifecycle:
// generated → completed (terminal) or expired → purged after retention.
type Order struct {
	id           string
	clientName   string
	clientType   ClientType
	requirements []catalog.Stack
	reward       int
	bonus        int
	deadline     time.Time
	description  string
	completed    bool
	expired      bool
}

// NewOrder creates a generated special order
func NewOrder(id, clientName string, clientType ClientType, requirements []catalog.Stack, reward, bonus int, deadline time.Time, description string) *Order {
	return &Order{
		id:           id,
		clientName:   clientName,
		clientType:   clientType,
		requirements: append([]catalog.Stack(nil), requirements...),
		reward:       reward,
		bonus:        bonus,
		deadline:     deadline,
		description:  description,
	}
}

// RestoreOrder rebuilds an order from persisted state
func RestoreOrder(id, clientName string, clientType ClientType, requirements []catalog.Stack, reward, bonus int, deadline time.Time, description string, completed, expired bool) *Order {
	o := NewOrder(id, clientName, clientType, requirements, reward, bonus, deadline, description)
	o.completed = completed
	o.expired = expired
	return o
}

func (o *Order) ID() string             { return o.id }
func (o *Order) ClientName() string     { return o.clientName }
func (o *Order) ClientType() ClientType { return o.clientType }
func (o *Order) Reward() int            { return o.reward }
func (o *Order) Bonus() int             { return o.bonus }
func (o *Order) Deadline() time.Time    { return o.deadline }
func (o *Order) Description() string    { return o.description }
func (o *Order) IsCompleted() bool      { return o.completed }
func (o *Order) IsExpired() bool        { return o.expired }

// Requirements returns a copy of the required stacks
func (o *Order) Requirements() []catalog.Stack {
	return append([]catalog.Stack(nil), o.requirements...)
}

// IsOpen reports whether the order can still be fulfilled
func (o *Order) IsOpen() bool {
	return !o.completed && !o.expired
}

// Fulfill marks the order completed and returns the total payout: the late
// fee policy is simply that the bonus is forfeited after the deadline.
func (o *Order) Fulfill(now time.Time) (totalReward int, onTime bool, err error) {
	if !o.IsOpen() {
		return 0, false, ErrOrderClosed
	}
	onTime = now.Before(o.deadline)
	total := o.reward
	if onTime {
		total += o.bonus
	}
	o.completed = true
	return total, onTime, nil
}

// MarkExpiredIfOverdue flags an incomplete order whose deadline has passed.
// Returns true if the order transitioned to expired.
func (o *Order) MarkExpiredIfOverdue(now time.Time) bool {
	if o.completed || o.expired {
		return false
	}
	if now.After(o.deadline) {
		o.expired = true
		return true
	}
	return false
}

// ShouldPurge reports whether an expired order has exceeded its retention
// window and must leave the working set.
func (o *Order) ShouldPurge(now time.Time) bool {
	return o.expired && now.Sub(o.deadline) >= expiredRetention
}

// View returns an immutable snapshot of the order
func (o *Order) View() OrderView {
	return OrderView{
		ID:           o.id,
		ClientName:   o.clientName,
		ClientType:   o.clientType,
		Requirements: o.Requirements(),
		Reward:       o.reward,
		Bonus:        o.bonus,
		Deadline:     o.deadline,
		Description:  o.description,
		IsCompleted:  o.completed,
		IsExpired:    o.expired,
	}
}

// OrderView is an immutable special order snapshot
type OrderView struct {
	ID           string
	ClientName   string
	ClientType   ClientType
	Requirements []catalog.Stack
	Reward       int
	Bonus        int
	Deadline     time.Time
	Description  string
	IsCompleted  bool
	IsExpired    bool
}
