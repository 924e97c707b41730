package models

import "gorm.io/gorm"

// Course is catalog data. The engine only reads it; authoring and
// publishing live in a separate admin system.
type Course struct {
	gorm.Model
	Title         string
	Description   string
	IsPublished   bool    `gorm:"default:false"`
	IsFeatured    bool    `gorm:"default:false"`
	StudentsCount uint    `gorm:"default:0"`
	Chapters      []Chapter
	Skills        []Skill `gorm:"many2many:course_skills"`
}

type Chapter struct {
	gorm.Model
	CourseID uint `gorm:"index;not null"`
	Title    string
	Position int `gorm:"default:0"`
	Lessons  []Lesson
}

type Lesson struct {
	gorm.Model
	ChapterID uint `gorm:"index;not null"`
	Title     string
	Duration  int `gorm:"default:0"` // minutes
	Position  int `gorm:"default:0"`
}

type Skill struct {
	gorm.Model
	Name string `gorm:"unique;not null"`
}
