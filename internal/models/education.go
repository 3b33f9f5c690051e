package models

// EducationLevel is the closed set of education keys accepted by the form.
type EducationLevel string

const (
	LevelIlkokul    EducationLevel = "ilkokul"
	LevelOrtaokul   EducationLevel = "ortaokul"
	LevelLise       EducationLevel = "lise"
	LevelUniversite EducationLevel = "universite"
)

// EducationLevels is the fixed rendering order for reports.
var EducationLevels = []EducationLevel{
	LevelIlkokul,
	LevelOrtaokul,
	LevelLise,
	LevelUniversite,
}

type EducationEntry struct {
	Okul string `bson:"okul" json:"okul"`
	Yil  string `bson:"yil,omitempty" json:"yil,omitempty"`
}

// EducationMap holds only the levels the applicant filled in; absent levels
// are simply not present.
type EducationMap map[EducationLevel]EducationEntry
