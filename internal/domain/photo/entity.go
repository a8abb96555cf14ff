package photo

// Photo is one captured set photo. Rows are immutable after creation; the
// only write after Create is full deletion.
type Photo struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	// Filename is the blob locator: a bare filename under the uploads dir
	// in local mode, or a full secure URL in Cloudinary mode.
	Filename         string  `gorm:"column:filename;not null" json:"filename"`
	Caption          string  `gorm:"column:caption" json:"caption"`
	CreatedAt        int64   `gorm:"column:created_at;not null" json:"created_at"`
	AIIdentifiedName *string `gorm:"column:ai_identified_name" json:"ai_identified_name"`
	Theme            *string `gorm:"column:theme" json:"theme"`
}

func (Photo) TableName() string { return "photos" }
