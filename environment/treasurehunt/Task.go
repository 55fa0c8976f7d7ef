package treasurehunt

// ShapingScale is the potential lost per unit of Manhattan distance to
// the current target
const ShapingScale = 0.05

// Delivery is the task of picking up the treasure and delivering it to
// the goal. It holds the reward scheme of a TreasureHunt.
type Delivery struct {
	treasure, goal Position

	stepCost      float64
	hitCost       float64
	trapCost      float64
	pickupReward  float64
	successReward float64
	shaping       bool
}

// NewDelivery returns the Delivery task described by c
func NewDelivery(c Config) *Delivery {
	return &Delivery{
		treasure:      c.Treasure,
		goal:          c.Goal,
		stepCost:      c.StepCost,
		hitCost:       c.HitCost,
		trapCost:      c.TrapCost,
		pickupReward:  c.PickupReward,
		successReward: c.SuccessReward,
		shaping:       c.Shaping,
	}
}

// Target returns the position the agent should currently head to: the
// treasure before pickup, the goal afterwards
func (d *Delivery) Target(carrying bool) Position {
	if carrying {
		return d.goal
	}
	return d.treasure
}

// Potential returns the shaping potential of position p, which is zero
// whenever shaping is disabled
func (d *Delivery) Potential(p Position, carrying bool) float64 {
	if !d.shaping {
		return 0.0
	}
	return -ShapingScale * float64(p.Manhattan(d.Target(carrying)))
}

// AtGoal returns whether the treasure has been delivered
func (d *Delivery) AtGoal(p Position, carrying bool) bool {
	return carrying && p == d.goal
}

// CanPickup returns whether the treasure is picked up at p
func (d *Delivery) CanPickup(p Position, carrying bool) bool {
	return !carrying && p == d.treasure
}
