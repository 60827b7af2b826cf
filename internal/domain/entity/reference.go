package entity

// Reference catalogs used to populate survey form selects. Read-only from
// this service's perspective; rows are seeded by migrations.

type State struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
}

func (State) TableName() string {
	return "states"
}

type Municipality struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	StateID uint   `gorm:"not null;index" json:"state_id"`
	Name    string `gorm:"type:varchar(100);not null" json:"name"`
}

func (Municipality) TableName() string {
	return "municipalities"
}

type OrganizationRole struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
}

func (OrganizationRole) TableName() string {
	return "organization_roles"
}
