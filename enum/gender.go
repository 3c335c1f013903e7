package enum

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)
