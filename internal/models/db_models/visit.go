package db_models

// Visit is one row of the append-only visit log.
type Visit struct {
	Location  string `gorm:"column:location;type:text"`
	Timestamp string `gorm:"column:timestamp;type:text"`
}

func (Visit) TableName() string {
	return "visited"
}
