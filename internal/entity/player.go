// Package entity provides the player and the monsters that sit on enemy tiles.
package entity

// DefaultMaxHealth is the health a new player starts with.
const DefaultMaxHealth = 100

// Player represents the adventurer exploring the dungeon.
type Player struct {
	X, Y      int  // Current position in tile coordinates
	Health    int  // Current health
	MaxHealth int  // Health cap for healing
	Coins     int  // Coins collected so far
	Symbol    rune // Display symbol
}

// NewPlayer creates a player with full health at the given position.
func NewPlayer(x, y int) *Player {
	return &Player{
		X:         x,
		Y:         y,
		Health:    DefaultMaxHealth,
		MaxHealth: DefaultMaxHealth,
		Symbol:    '@',
	}
}

// MoveTo places the player at the given position.
func (p *Player) MoveTo(x, y int) {
	p.X = x
	p.Y = y
}

// Position returns the current x, y coordinates.
func (p *Player) Position() (int, int) {
	return p.X, p.Y
}

// IsAlive returns true while the player has health left.
func (p *Player) IsAlive() bool {
	return p.Health > 0
}

// TakeDamage reduces health, never below zero, and returns the damage actually taken.
func (p *Player) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	if amount > p.Health {
		amount = p.Health
	}
	p.Health -= amount
	return amount
}

// Heal restores health up to MaxHealth and returns the amount actually healed.
func (p *Player) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	if p.Health+amount > p.MaxHealth {
		amount = p.MaxHealth - p.Health
	}
	p.Health += amount
	return amount
}

// CollectCoins adds coins to the purse.
func (p *Player) CollectCoins(amount int) {
	if amount > 0 {
		p.Coins += amount
	}
}
