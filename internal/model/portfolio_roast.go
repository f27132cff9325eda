package model

import (
	"time"

	"gorm.io/datatypes"
)

// PortfolioRoast keeps the echoed portfolio input alongside the generated
// roast so the history endpoint can replay both.
type PortfolioRoast struct {
	ID                uint           `gorm:"primarykey" json:"id"`
	Portfolio         datatypes.JSON `gorm:"type:jsonb" json:"portfolio"`
	OverallRoast      string         `gorm:"not null" json:"overall_roast"`
	TokenRoasts       datatypes.JSON `gorm:"type:jsonb" json:"token_roasts"`
	AlternateUniverse string         `gorm:"not null" json:"alternate_universe"`
	CreatedAt         time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (PortfolioRoast) TableName() string {
	return "portfolio_roasts"
}
